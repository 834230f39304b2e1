package repository

import (
	"context"
	"testing"
	"time"

	"taskassign/internal/model"
)

func TestAttendanceRepositoryUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	if err := repo.Upsert(ctx, ada.ID, day, true); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// Second upsert for the same pair overwrites instead of inserting.
	if err := repo.Upsert(ctx, ada.ID, day, false); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	var records []model.Attendance
	if err := db.Find(&records).Error; err != nil {
		t.Fatalf("find attendance: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].IsAvailable {
		t.Error("expected availability overwritten to false")
	}
}

func TestAttendanceRepositoryUpsertNormalizesDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")

	// Two times on the same calendar day must hit the same record.
	morning := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 10, 22, 30, 0, 0, time.UTC)
	if err := repo.Upsert(ctx, ada.ID, morning, true); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := repo.Upsert(ctx, ada.ID, evening, true); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	var count int64
	if err := db.Model(&model.Attendance{}).Count(&count).Error; err != nil {
		t.Fatalf("count attendance: %v", err)
	}
	if count != 1 {
		t.Errorf("record count = %d, want 1", count)
	}
}

func TestAttendanceRepositoryListOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	bob := mustCreateContributor(t, db, "Bob", "bob@example.com")

	day1 := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, record := range []struct {
		id   uint
		day  time.Time
		avle bool
	}{
		{bob.ID, day1, true},
		{ada.ID, day2, true},
		{bob.ID, day2, false},
		{ada.ID, day1, false},
	} {
		if err := repo.Upsert(ctx, record.id, record.day, record.avle); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("record count = %d, want 4", len(records))
	}

	// Date descending, then contributor name ascending.
	wantNames := []string{"Ada", "Bob", "Ada", "Bob"}
	wantDates := []time.Time{day2, day2, day1, day1}
	for i, record := range records {
		if record.Contributor == nil || record.Contributor.Name != wantNames[i] {
			t.Errorf("records[%d] contributor = %v, want %s", i, record.Contributor, wantNames[i])
		}
		if !model.DateOf(record.Date).Equal(wantDates[i]) {
			t.Errorf("records[%d] date = %v, want %v", i, record.Date, wantDates[i])
		}
	}
}

func TestAttendanceRepositoryListByDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	bob := mustCreateContributor(t, db, "Bob", "bob@example.com")

	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	other := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	if err := repo.Upsert(ctx, ada.ID, day, true); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := repo.Upsert(ctx, bob.ID, other, true); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	byContributor, err := repo.ListByDate(ctx, day)
	if err != nil {
		t.Fatalf("ListByDate() error = %v", err)
	}
	if len(byContributor) != 1 {
		t.Fatalf("records for date = %d, want 1", len(byContributor))
	}
	if record, ok := byContributor[ada.ID]; !ok || !record.IsAvailable {
		t.Errorf("unexpected record for Ada: %+v", record)
	}
}
