package entity

import "time"

// Exam is a lab or diagnostic exam result.
type Exam struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  int64     `gorm:"not null;index" json:"patient_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	ExamType   string    `gorm:"type:varchar(100);not null;index" json:"exam_type"`
	Result     string    `gorm:"type:text;not null" json:"result"`
	RecordedAt time.Time `gorm:"autoCreateTime" json:"recorded_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
