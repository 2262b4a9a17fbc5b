package plate

import (
	"strings"

	"vehicle-lookup-service/internal/model"
)

// junkTokens are jurisdiction stamp words EasyOCR-style engines keep picking
// up around Indian plates ("IND" hologram strip, partial reads of it, and the
// country name). They are deleted as plain substrings, in this order, before
// the character filter runs. Substring deletion can eat real plate characters
// when a plate happens to contain one of these sequences; that trade-off is
// accepted and covered by the fuzzy lookup downstream.
var junkTokens = []string{"IND", "INDIA", "WND", "RRA", "ND", "FR", "IN"}

// confusionMap corrects single-character OCR misreads. Each rule fires at
// most once per character position; substitution results are never re-fed
// into the map.
var confusionMap = map[rune]rune{
	'O': '0',
	'I': '1',
	'Z': '2',
	'S': '5',
	'L': 'T',
}

// Join concatenates fragment texts with single spaces in OCR emission order.
func Join(fragments []model.RawFragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}

// Normalize turns raw OCR fragments into an uppercase alphanumeric stream
// ready for pattern matching. Pure and total: empty input yields "".
func Normalize(fragments []model.RawFragment) string {
	return NormalizeText(Join(fragments))
}

// NormalizeText is Normalize for an already-joined text blob (used by the
// direct plate-text lookup, where the caller sends one string).
func NormalizeText(raw string) string {
	text := strings.ToUpper(raw)

	for _, junk := range junkTokens {
		text = strings.ReplaceAll(text, junk, "")
	}

	var b strings.Builder
	b.Grow(len(text))
	var prev rune
	for _, r := range text {
		if !isAlnum(r) {
			continue
		}
		if mapped, ok := confusionMap[r]; ok {
			r = mapped
		}
		// collapse runs of identical characters left by overlapping
		// recognition boxes (BNB -> doubled N reads, "AA" for "A")
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
