package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LogCategory classifies a self-reported observation.
type LogCategory string

const (
	LogCategoryWeight        LogCategory = "weight"
	LogCategoryBloodPressure LogCategory = "blood_pressure"
	LogCategorySymptoms      LogCategory = "symptoms"
	LogCategoryMedication    LogCategory = "medication"
	LogCategoryDiet          LogCategory = "diet"
	LogCategoryExercise      LogCategory = "exercise"
	LogCategoryMood          LogCategory = "mood"
	LogCategoryFetalMovement LogCategory = "fetal_movement"
	LogCategoryOther         LogCategory = "other"
)

var logCategoryLabels = map[LogCategory]string{
	LogCategoryWeight:        "Weight",
	LogCategoryBloodPressure: "Blood pressure",
	LogCategorySymptoms:      "Symptoms",
	LogCategoryMedication:    "Medication",
	LogCategoryDiet:          "Diet",
	LogCategoryExercise:      "Exercise",
	LogCategoryMood:          "Mood / well-being",
	LogCategoryFetalMovement: "Fetal movement",
	LogCategoryOther:         "Other",
}

func (c LogCategory) IsValid() bool {
	_, ok := logCategoryLabels[c]
	return ok
}

func (c LogCategory) Label() string {
	return logCategoryLabels[c]
}

// GestationLogEntry is a health observation the patient records on their own.
type GestationLogEntry struct {
	ID              int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	PortalAccountID int64               `gorm:"not null;index" json:"portal_account_id"`
	Category        LogCategory         `gorm:"type:varchar(20);not null;index" json:"category"`
	Title           string              `gorm:"type:varchar(200);not null" json:"title"`
	Description     string              `gorm:"type:text;not null" json:"description"`
	NumericValue    decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"numeric_value"`
	Unit            *string             `gorm:"type:varchar(20)" json:"unit,omitempty"`
	RecordedAt      time.Time           `gorm:"not null;index" json:"recorded_at"`
	Important       bool                `gorm:"not null;default:false" json:"important"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (GestationLogEntry) TableName() string {
	return "gestation_log_entries"
}
