package model

import "time"

// Task is a single assignment owned by exactly one contributor.
type Task struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"size:200;not null"`
	Description   string    `gorm:"size:500"`
	EndDate       time.Time `gorm:"type:date"`
	Start         time.Time
	IsCompleted   bool `gorm:"default:false"`
	ContributorID uint `gorm:"index;not null"`
	Contributor   *Contributor
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the date ordering rule: the end date must fall strictly
// after the calendar date of the start. Runs on every persist, not only on
// form submission.
func (t *Task) Validate() error {
	if t.Start.IsZero() || t.EndDate.IsZero() {
		return nil
	}
	if !DateOf(t.EndDate).After(DateOf(t.Start)) {
		var errs ValidationErrors
		errs.AddRecord(MsgEndBeforeStart)
		return &errs
	}
	return nil
}

// DateOf returns the calendar date of t as midnight UTC, so dates coming
// from different sources compare and store consistently.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
