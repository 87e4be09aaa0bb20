package rdb

import "time"

// OutcomeRecord is the journal persistence model for a load/validate
// outcome. Slices are JSON encoded; the journal is read back whole, never
// queried by driver.
// Table name: outcomes
type OutcomeRecord struct {
	ID          string    `gorm:"primaryKey;type:text;not null"`
	Environment string    `gorm:"type:text;not null;index"`
	Mode        string    `gorm:"type:text;not null"`
	Success     bool      `gorm:"not null"`
	Loaded      string    `gorm:"type:text"` // JSON encoded []string
	Failed      string    `gorm:"type:text"` // JSON encoded []model.FailureDetail
	Unknown     string    `gorm:"type:text"` // JSON encoded []string
	CompletedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (OutcomeRecord) TableName() string { return "outcomes" }
