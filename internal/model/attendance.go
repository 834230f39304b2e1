package model

import "time"

// Attendance records whether a contributor was available on a given date.
// At most one record exists per (contributor, date) pair.
type Attendance struct {
	ID            uint      `gorm:"primaryKey"`
	ContributorID uint      `gorm:"not null;index:idx_attendance_contributor_date,unique"`
	Date          time.Time `gorm:"type:date;index:idx_attendance_contributor_date,unique"`
	IsAvailable   bool      `gorm:"default:false"`
	Contributor   *Contributor
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
