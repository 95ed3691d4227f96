package entity

import (
	"time"

	"prenatal-care-api/internal/domain/gestation"

	"gorm.io/gorm"
)

// Patient is a pregnant person under prenatal care.
type Patient struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string     `gorm:"type:varchar(100);not null;index" json:"name"`
	DateOfBirth         time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	NationalID          string     `gorm:"column:national_id;type:varchar(20);uniqueIndex;not null" json:"national_id"`
	Address             string     `gorm:"type:text;not null" json:"address"`
	Phone               string     `gorm:"type:varchar(15);not null" json:"phone"`
	Email               *string    `gorm:"type:varchar(254)" json:"email,omitempty"`
	LastMenstrualPeriod *time.Time `gorm:"type:date" json:"last_menstrual_period,omitempty"`
	DueDate             *time.Time `gorm:"type:date;index" json:"due_date,omitempty"`
	RegisteredAt        time.Time  `gorm:"not null;index" json:"registered_at"`

	// Relationships
	Visits        []Visit        `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"visits,omitempty"`
	Exams         []Exam         `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"exams,omitempty"`
	PortalAccount *PortalAccount `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"portal_account,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// EnsureDueDate fills the due date from the last menstrual period when it is missing.
// An existing due date is never recomputed.
func (p *Patient) EnsureDueDate() {
	if p.LastMenstrualPeriod == nil || p.LastMenstrualPeriod.IsZero() || p.DueDate != nil {
		return
	}
	due := gestation.DueDate(*p.LastMenstrualPeriod)
	p.DueDate = &due
}

// GestationalWeeks returns completed weeks of pregnancy on asOf.
func (p *Patient) GestationalWeeks(asOf time.Time) (int, bool) {
	return gestation.WeeksAt(p.LastMenstrualPeriod, asOf)
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.RegisteredAt.IsZero() {
		p.RegisteredAt = time.Now()
	}
	return nil
}

func (p *Patient) BeforeSave(tx *gorm.DB) error {
	p.EnsureDueDate()
	return nil
}
