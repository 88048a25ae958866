package main

import (
	"time"
)

// --- Survey responses ---

// SurveyResponse is one submitted form. Records are append-only: created on
// submit, never updated or deleted.
type SurveyResponse struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	ConsentAgreed bool   `gorm:"not null" json:"consentAgreed"`
	GradeLevel    string `gorm:"size:64" json:"gradeLevel"`

	Q1A string `gorm:"column:q1_a" json:"q1_a"`
	Q1B string `gorm:"column:q1_b" json:"q1_b"`
	// multi-select; stored as a JSON array string, e.g. ["a","c"]
	Q1CRaw string `gorm:"column:q1_c" json:"-"`
	Q1D    string `gorm:"column:q1_d" json:"q1_d"`
	Q1E    string `gorm:"column:q1_e" json:"q1_e"`
	Q1F    string `gorm:"column:q1_f" json:"q1_f"`

	Q2A string `gorm:"column:q2_a" json:"q2_a"`
	Q2B string `gorm:"column:q2_b" json:"q2_b"`
	Q2C string `gorm:"column:q2_c" json:"q2_c"`

	QuizQ1 string `gorm:"column:quiz_q1" json:"quiz_q1"`
	QuizQ2 string `gorm:"column:quiz_q2" json:"quiz_q2"`
	QuizQ3 string `gorm:"column:quiz_q3" json:"quiz_q3"`
	QuizQ4 string `gorm:"column:quiz_q4" json:"quiz_q4"`
	QuizQ5 string `gorm:"column:quiz_q5" json:"quiz_q5"`
	QuizQ6 string `gorm:"column:quiz_q6" json:"quiz_q6"`
	QuizQ7 string `gorm:"column:quiz_q7" json:"quiz_q7"`

	// exposed to clients as "finalReadingDuration"
	ReadingDuration int `gorm:"column:reading_duration" json:"-"`

	SubmittedAt time.Time `gorm:"not null;index" json:"timestamp"`
}
