package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		reg_number    VARCHAR(20) PRIMARY KEY,
		owner         VARCHAR(100),
		model         VARCHAR(100),
		fuel          VARCHAR(20),
		reg_date      VARCHAR(50),
		vehicle_class VARCHAR(50),
		color         VARCHAR(50),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS scan_history (
		id          UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id     UUID NOT NULL,
		plate       VARCHAR(20) NOT NULL,
		raw_payload JSONB,
		scanned_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_scan_history_user_id ON scan_history (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_scan_history_scanned_at ON scan_history (scanned_at);`,
	// demo registrations so a fresh instance resolves something without the
	// external registry being reachable
	`INSERT INTO vehicles (reg_number, owner, model, fuel, reg_date, vehicle_class, color) VALUES
		('RJ14DT3249', 'Amit Patel', 'Maruti Swift Dzire', 'Diesel', '10 Aug 2019', 'Motor Car', 'White'),
		('KA41ER4547', 'Rahul Mehta', 'Royal Enfield Classic 350', 'Petrol', '15 Feb 2021', 'Two Wheeler', 'Black'),
		('DL82AF5032', 'Sunita Sharma', 'Hyundai Creta', 'Petrol', '22 May 2020', 'Motor Car', 'Silver'),
		('MH12AB1234', 'Vikram Singh', 'Honda City', 'Petrol', '30 Mar 2018', 'Motor Car', 'Blue'),
		('TN09CD5678', 'Priya Reddy', 'Bajaj Pulsar 150', 'Petrol', '12 Dec 2019', 'Two Wheeler', 'Red')
	ON CONFLICT (reg_number) DO NOTHING;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
