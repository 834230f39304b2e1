package service

import (
	"context"
	"time"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

// AttendanceService records daily availability for contributors.
type AttendanceService struct {
	attendanceRepo  *repository.AttendanceRepository
	contributorRepo *repository.ContributorRepository
}

func NewAttendanceService(attendanceRepo *repository.AttendanceRepository, contributorRepo *repository.ContributorRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, contributorRepo: contributorRepo}
}

// Reconcile writes the full availability map for one date: every known
// contributor gets a record, available when their id is in presentIDs and
// unavailable otherwise. Existing records for the date are overwritten, so
// running it twice with the same inputs leaves the store unchanged.
func (s *AttendanceService) Reconcile(ctx context.Context, date time.Time, presentIDs []uint) error {
	present := make(map[uint]bool, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = true
	}

	contributors, err := s.contributorRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, contributor := range contributors {
		if err := s.attendanceRepo.Upsert(ctx, contributor.ID, date, present[contributor.ID]); err != nil {
			return err
		}
	}
	return nil
}

func (s *AttendanceService) List(ctx context.Context) ([]model.Attendance, error) {
	return s.attendanceRepo.List(ctx)
}

// TakeSheet returns all contributors plus which of them already have an
// available record for the date, for pre-filling the bulk take form.
func (s *AttendanceService) TakeSheet(ctx context.Context, date time.Time) ([]model.Contributor, map[uint]bool, error) {
	contributors, err := s.contributorRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	available := make(map[uint]bool, len(records))
	for id, record := range records {
		if record.IsAvailable {
			available[id] = true
		}
	}
	return contributors, available, nil
}
