package plate

import (
	"regexp"
)

// platePatterns is the structural pattern ladder, most specific first.
// The first pattern that matches anywhere in the text wins, even when a
// looser pattern would match an earlier substring. Within one pattern the
// leftmost match is taken.
var platePatterns = []*regexp.Regexp{
	// full form: state, two-digit district, two-letter series, four digits
	regexp.MustCompile(`[A-Z]{2}[0-9]{2}[A-Z]{2}[0-9]{4}`),
	// relaxed district/series widths
	regexp.MustCompile(`[A-Z]{2}[0-9]{1,2}[A-Z]{1,3}[0-9]{4}`),
	// three-digit serial for older registrations
	regexp.MustCompile(`[A-Z]{2}[0-9]{1,2}[A-Z]{1,3}[0-9]{3}`),
	// generic fallback for partially damaged reads
	regexp.MustCompile(`[A-Z0-9]{6,10}`),
}

// Extract returns the best plate candidate found in a normalized text, or
// "" when nothing structurally plausible is present. Total for any input.
func Extract(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range platePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}
