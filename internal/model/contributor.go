package model

import "time"

// Contributor is a person that tasks can be assigned to.
type Contributor struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Deleting a contributor removes everything they own.
	Tasks       []Task       `gorm:"foreignKey:ContributorID;constraint:OnDelete:CASCADE"`
	Attendances []Attendance `gorm:"foreignKey:ContributorID;constraint:OnDelete:CASCADE"`
}
