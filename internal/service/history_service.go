package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"vehicle-lookup-service/internal/model"
)

// HistoryStore is the slice of the scan-history repository the service uses.
type HistoryStore interface {
	Create(ctx context.Context, entry *model.ScanHistoryEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ScanHistoryEntry, error)
}

type HistoryService struct {
	store HistoryStore
	log   zerolog.Logger
}

func NewHistoryService(store HistoryStore, log zerolog.Logger) *HistoryService {
	return &HistoryService{
		store: store,
		log:   log,
	}
}

// Record appends one lookup event. The caller decides what to do with a
// failure; resolution results must never depend on it.
func (s *HistoryService) Record(ctx context.Context, userID uuid.UUID, plate string, rawPayload datatypes.JSON, scannedAt time.Time) error {
	entry := &model.ScanHistoryEntry{
		UserID:     userID,
		Plate:      plate,
		RawPayload: rawPayload,
		ScannedAt:  scannedAt,
	}
	return s.store.Create(ctx, entry)
}

type HistoryItem struct {
	Plate     string    `json:"plate"`
	ScannedAt time.Time `json:"scanned_at"`
}

func (s *HistoryService) GetHistory(ctx context.Context, userID uuid.UUID) ([]HistoryItem, error) {
	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			Plate:     e.Plate,
			ScannedAt: e.ScannedAt,
		})
	}
	return items, nil
}
