package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScanHistoryEntry is an append-only log row; entries are never mutated
// or deleted by the service.
type ScanHistoryEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Plate      string         `gorm:"type:varchar(20);not null" json:"plate"`
	RawPayload datatypes.JSON `gorm:"type:jsonb" json:"raw_payload,omitempty"`
	ScannedAt  time.Time      `gorm:"not null;index" json:"scanned_at"`
}

func (ScanHistoryEntry) TableName() string {
	return "scan_history"
}

func (e *ScanHistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
