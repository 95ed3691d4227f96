package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Visit is a prenatal checkup recorded by staff.
type Visit struct {
	ID             int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int64               `gorm:"not null;index" json:"patient_id"`
	Date           time.Time           `gorm:"type:date;not null;index" json:"date"`
	Location       string              `gorm:"type:varchar(100);not null" json:"location"`
	Provider       string              `gorm:"type:varchar(100);not null" json:"provider"`
	Weight         decimal.Decimal     `gorm:"type:decimal(5,2);not null" json:"weight"`
	BloodPressure  string              `gorm:"type:varchar(10);not null" json:"blood_pressure"`
	UterineHeight  decimal.NullDecimal `gorm:"type:decimal(4,1)" json:"uterine_height"`
	FetalHeartRate *int                `json:"fetal_heart_rate,omitempty"`
	Notes          *string             `gorm:"type:text" json:"notes,omitempty"`
	RecordedAt     time.Time           `gorm:"autoCreateTime" json:"recorded_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}
