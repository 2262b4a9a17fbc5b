package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vehicle-lookup-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) GetByRegNumber(ctx context.Context, regNumber string) (*model.Vehicle, error) {
	if regNumber == "" {
		return nil, nil
	}
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).
		Where("reg_number = ?", regNumber).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) ListRegNumbers(ctx context.Context) ([]string, error) {
	var regNumbers []string
	err := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Order("reg_number").
		Pluck("reg_number", &regNumbers).Error
	if err != nil {
		return nil, err
	}
	return regNumbers, nil
}

// CreateIfAbsent persists a freshly fetched record. Concurrent write-backs
// of the same registration number are expected; the first writer wins and
// later ones are silent no-ops.
func (r *VehicleRepository) CreateIfAbsent(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reg_number"}},
			DoNothing: true,
		}).
		Create(vehicle).Error
}
