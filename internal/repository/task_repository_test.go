package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskassign/internal/model"
)

func TestTaskRepositoryCreateValidates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")

	start := time.Date(2030, 1, 10, 9, 0, 0, 0, time.Local)
	task := &model.Task{
		Title:         "Ship",
		Start:         start,
		EndDate:       model.DateOf(start), // same calendar date: invalid
		ContributorID: ada.ID,
	}

	err := repo.Create(ctx, task)
	var verrs *model.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Create() error = %v, want ValidationErrors", err)
	}

	// Nothing was written.
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("task count = %d, want 0", count)
	}
}

func TestTaskRepositoryToggleTwiceRestores(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	task := mustCreateTask(t, db, "Ship", ada.ID, time.Now().Add(24*time.Hour), false)

	completed, err := repo.ToggleCompleted(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleCompleted() error = %v", err)
	}
	if !completed {
		t.Error("first toggle should complete the task")
	}

	completed, err = repo.ToggleCompleted(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleCompleted() error = %v", err)
	}
	if completed {
		t.Error("second toggle should restore the original state")
	}
}

func TestTaskRepositoryToggleMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	if _, err := repo.ToggleCompleted(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ToggleCompleted() error = %v, want ErrNotFound", err)
	}
}

func TestTaskRepositoryListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	bob := mustCreateContributor(t, db, "Bob", "bob@example.com")

	base := time.Date(2030, 1, 1, 9, 0, 0, 0, time.Local)
	mustCreateTask(t, db, "Oldest", ada.ID, base, true)
	mustCreateTask(t, db, "Middle", bob.ID, base.Add(24*time.Hour), false)
	mustCreateTask(t, db, "Newest", ada.ID, base.Add(48*time.Hour), false)

	t.Run("no filter, start descending", func(t *testing.T) {
		tasks, info, err := repo.List(ctx, TaskFilter{}, 1, 10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if info.Total != 3 {
			t.Errorf("total = %d, want 3", info.Total)
		}
		if tasks[0].Title != "Newest" || tasks[2].Title != "Oldest" {
			t.Errorf("unexpected order: %s ... %s", tasks[0].Title, tasks[2].Title)
		}
		if tasks[0].Contributor == nil || tasks[0].Contributor.Name != "Ada" {
			t.Error("expected contributor preloaded")
		}
	})

	t.Run("completed only", func(t *testing.T) {
		tasks, _, err := repo.List(ctx, TaskFilter{Status: StatusCompleted}, 1, 10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Oldest" {
			t.Errorf("completed filter returned %d tasks", len(tasks))
		}
	})

	t.Run("pending only", func(t *testing.T) {
		tasks, _, err := repo.List(ctx, TaskFilter{Status: StatusPending}, 1, 10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("pending filter returned %d tasks, want 2", len(tasks))
		}
	})

	t.Run("by contributor", func(t *testing.T) {
		tasks, _, err := repo.List(ctx, TaskFilter{ContributorID: bob.ID}, 1, 10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Middle" {
			t.Errorf("contributor filter returned %d tasks", len(tasks))
		}
	})

	t.Run("combined", func(t *testing.T) {
		tasks, _, err := repo.List(ctx, TaskFilter{Status: StatusPending, ContributorID: ada.ID}, 1, 10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Newest" {
			t.Errorf("combined filter returned %d tasks", len(tasks))
		}
	})
}

func TestTaskRepositoryRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	base := time.Date(2030, 1, 1, 9, 0, 0, 0, time.Local)
	titles := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, title := range titles {
		mustCreateTask(t, db, title, ada.ID, base.Add(time.Duration(i)*24*time.Hour), false)
	}

	recent, err := repo.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("recent length = %d, want 5", len(recent))
	}
	if recent[0].Title != "g" || recent[4].Title != "c" {
		t.Errorf("unexpected recent order: %s ... %s", recent[0].Title, recent[4].Title)
	}
}

func TestTaskRepositoryCountByContributor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ada := mustCreateContributor(t, db, "Ada", "ada@example.com")
	bob := mustCreateContributor(t, db, "Bob", "bob@example.com")
	mustCreateContributor(t, db, "Idle", "idle@example.com")

	start := time.Now().Add(24 * time.Hour)
	mustCreateTask(t, db, "One", ada.ID, start, false)
	mustCreateTask(t, db, "Two", ada.ID, start, true)
	mustCreateTask(t, db, "Three", bob.ID, start, false)

	counts, err := repo.CountByContributor(ctx)
	if err != nil {
		t.Fatalf("CountByContributor() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts length = %d, want 2 (idle contributor excluded)", len(counts))
	}
	if counts[0].Name != "Ada" || counts[0].TaskCount != 2 {
		t.Errorf("counts[0] = %+v, want Ada with 2", counts[0])
	}
	if counts[1].Name != "Bob" || counts[1].TaskCount != 1 {
		t.Errorf("counts[1] = %+v, want Bob with 1", counts[1])
	}
}
