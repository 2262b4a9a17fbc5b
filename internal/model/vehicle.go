package model

import (
	"time"
)

// Vehicle is the cached registry record for one registration number.
// Once written the row is never updated; stale registry data is evicted
// manually if it ever needs refreshing.
type Vehicle struct {
	RegNumber    string    `gorm:"column:reg_number;type:varchar(20);primaryKey" json:"reg_number"`
	Owner        string    `gorm:"type:varchar(100)" json:"owner"`
	Model        string    `gorm:"type:varchar(100)" json:"model"`
	Fuel         string    `gorm:"type:varchar(20)" json:"fuel"`
	RegDate      string    `gorm:"column:reg_date;type:varchar(50)" json:"reg_date"`
	VehicleClass string    `gorm:"type:varchar(50)" json:"vehicle_class"`
	Color        string    `gorm:"type:varchar(50)" json:"color"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
