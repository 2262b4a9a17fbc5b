package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"vehicle-lookup-service/internal/model"
	"vehicle-lookup-service/internal/plate"
	"vehicle-lookup-service/internal/utils"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// fuzzyThreshold is the minimum similarity for accepting a cached plate as
// a match for a noisy candidate: no more than ~40% of the characters may
// differ. Tuned against observed OCR error patterns; applied consistently
// but deliberately not part of the caller-visible contract.
const fuzzyThreshold = 0.6

// VehicleStore is the slice of the vehicle repository the resolver uses.
type VehicleStore interface {
	GetByRegNumber(ctx context.Context, regNumber string) (*model.Vehicle, error)
	ListRegNumbers(ctx context.Context) ([]string, error)
	CreateIfAbsent(ctx context.Context, vehicle *model.Vehicle) error
}

// RegistryFetcher queries the authoritative external registry.
type RegistryFetcher interface {
	FetchVehicle(ctx context.Context, regNumber string) (*model.Vehicle, error)
}

type LookupService struct {
	vehicles VehicleStore
	registry RegistryFetcher
	history  *HistoryService
	log      zerolog.Logger
}

func NewLookupService(vehicles VehicleStore, registry RegistryFetcher, history *HistoryService, log zerolog.Logger) *LookupService {
	return &LookupService{
		vehicles: vehicles,
		registry: registry,
		history:  history,
		log:      log,
	}
}

// ScanResult is the outcome of one full resolution. Plate == nil means no
// plausible plate was detected, and then Record is always nil as well.
type ScanResult struct {
	Plate   *string        `json:"plate"`
	Record  *model.Vehicle `json:"record"`
	RawText string         `json:"raw_text"`
}

// ResolveScan runs the full pipeline on OCR fragments: normalize, extract a
// candidate, resolve it to a cached or freshly fetched record, and append a
// history entry when the caller is known.
func (s *LookupService) ResolveScan(ctx context.Context, principal *model.Principal, fragments []model.RawFragment) (*ScanResult, error) {
	rawText := plate.Join(fragments)
	cleaned := plate.Normalize(fragments)

	result := &ScanResult{RawText: rawText}

	candidate := plate.Extract(cleaned)
	if candidate == "" {
		s.log.Debug().Str("raw_text", rawText).Msg("no plate candidate in recognized text")
		return result, nil
	}

	record := s.resolveRecord(ctx, candidate)
	if record == nil {
		result.Plate = &candidate
		return result, nil
	}

	result.Plate = &record.RegNumber
	result.Record = record

	if principal != nil {
		s.recordHistory(ctx, principal, record.RegNumber, fragments)
	}

	return result, nil
}

// ResolveText is ResolveScan for a single already-joined text blob, used by
// the direct plate lookup endpoint.
func (s *LookupService) ResolveText(ctx context.Context, principal *model.Principal, rawText string) (*ScanResult, error) {
	if rawText == "" {
		return nil, ErrInvalidInput
	}
	fragments := []model.RawFragment{{Text: rawText}}
	return s.ResolveScan(ctx, principal, fragments)
}

// resolveRecord implements the cache-aside lookup: exact hit, then fuzzy
// match against cached registrations, then an external fetch with write-back.
// Every failure mode degrades to a miss; at most one external fetch is made.
func (s *LookupService) resolveRecord(ctx context.Context, candidate string) *model.Vehicle {
	record, err := s.vehicles.GetByRegNumber(ctx, candidate)
	if err != nil {
		// деградируем до промаха кэша
		s.log.Error().Err(err).Str("plate", candidate).Msg("cache read failed, treating as miss")
	}
	if record != nil {
		return record
	}

	if matched := s.fuzzyMatch(ctx, candidate); matched != "" && matched != candidate {
		record, err = s.vehicles.GetByRegNumber(ctx, matched)
		if err != nil {
			s.log.Error().Err(err).Str("plate", matched).Msg("cache read failed after fuzzy match")
		}
		if record != nil {
			s.log.Info().
				Str("candidate", candidate).
				Str("matched", matched).
				Msg("fuzzy-matched plate to cached registration")
			return record
		}
	}

	// the fetch uses the unmodified candidate, not a fuzzy correction
	fetched, err := s.registry.FetchVehicle(ctx, candidate)
	if err != nil {
		s.log.Info().Err(err).Str("plate", candidate).Msg("registry lookup failed")
		return nil
	}

	if err := s.vehicles.CreateIfAbsent(ctx, fetched); err != nil {
		// record is still served to the caller even when caching it failed
		s.log.Error().Err(err).Str("plate", fetched.RegNumber).Msg("failed to persist fetched record")
	}

	return fetched
}

// fuzzyMatch returns the best cached registration number within the
// acceptance threshold, or "". Ties keep the first registration in store
// iteration order.
func (s *LookupService) fuzzyMatch(ctx context.Context, candidate string) string {
	regNumbers, err := s.vehicles.ListRegNumbers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list cached registrations")
		return ""
	}

	best := ""
	bestScore := 0.0
	for _, reg := range regNumbers {
		score := utils.Similarity(candidate, reg)
		if score >= fuzzyThreshold && score > bestScore {
			best = reg
			bestScore = score
		}
	}
	return best
}

func (s *LookupService) recordHistory(ctx context.Context, principal *model.Principal, regNumber string, fragments []model.RawFragment) {
	var rawPayload datatypes.JSON
	if len(fragments) > 0 {
		if data, err := json.Marshal(fragments); err == nil {
			rawPayload = data
		}
	}

	if err := s.history.Record(ctx, principal.UserID, regNumber, rawPayload, time.Now()); err != nil {
		// history is best-effort; the resolution result stands regardless
		s.log.Error().
			Err(err).
			Str("plate", regNumber).
			Str("user_id", principal.UserID.String()).
			Msg("failed to record scan history")
	}
}
