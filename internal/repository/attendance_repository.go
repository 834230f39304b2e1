package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskassign/internal/model"
)

// AttendanceRepository manages per-contributor daily attendance records.
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert writes the availability for one (contributor, date) pair: the
// existing record is overwritten if present, otherwise a new one is created.
// The unique index on the pair backstops concurrent writers.
func (r *AttendanceRepository) Upsert(ctx context.Context, contributorID uint, date time.Time, available bool) error {
	day := model.DateOf(date)
	db := r.db.WithContext(ctx)

	var record model.Attendance
	err := db.Where("contributor_id = ? AND date = ?", contributorID, day).First(&record).Error
	switch {
	case err == nil:
		if err := db.Model(&record).Update("is_available", available).Error; err != nil {
			return fmt.Errorf("update attendance: %w", translate(err))
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = model.Attendance{ContributorID: contributorID, Date: day, IsAvailable: available}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("create attendance: %w", translate(err))
		}
		return nil
	default:
		return fmt.Errorf("find attendance: %w", err)
	}
}

// List returns all attendance records ordered by date descending, then
// contributor name ascending. The listing is deliberately unpaginated.
func (r *AttendanceRepository) List(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Joins("JOIN contributors ON contributors.id = attendances.contributor_id").
		Order("attendances.date DESC, contributors.name ASC").
		Preload("Contributor").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// ListByDate returns the records for one date keyed by contributor id, for
// pre-filling the bulk take form.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) (map[uint]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).
		Where("date = ?", model.DateOf(date)).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	byContributor := make(map[uint]model.Attendance, len(records))
	for _, record := range records {
		byContributor[record.ContributorID] = record
	}
	return byContributor, nil
}
