package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle-lookup-service/internal/model"
)

type ScanHistoryRepository struct {
	db *gorm.DB
}

func NewScanHistoryRepository(db *gorm.DB) *ScanHistoryRepository {
	return &ScanHistoryRepository{db: db}
}

func (r *ScanHistoryRepository) Create(ctx context.Context, entry *model.ScanHistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ScanHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ScanHistoryEntry, error) {
	var entries []model.ScanHistoryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scanned_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
