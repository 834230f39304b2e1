package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskassign/internal/model"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func mustCreateContributor(t *testing.T, db *gorm.DB, name, email string) *model.Contributor {
	t.Helper()
	contributor := &model.Contributor{Name: name, Email: email}
	if err := db.Create(contributor).Error; err != nil {
		t.Fatalf("failed to create contributor %s: %v", name, err)
	}
	return contributor
}

func mustCreateTask(t *testing.T, db *gorm.DB, title string, contributorID uint, start time.Time, completed bool) *model.Task {
	t.Helper()
	task := &model.Task{
		Title:         title,
		Start:         start,
		EndDate:       model.DateOf(start.Add(48 * time.Hour)),
		IsCompleted:   completed,
		ContributorID: contributorID,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}
