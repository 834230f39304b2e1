package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

type testRepos struct {
	db           *gorm.DB
	contributors *repository.ContributorRepository
	tasks        *repository.TaskRepository
	attendance   *repository.AttendanceRepository
}

// setupTestRepos creates an in-memory store with all repositories.
func setupTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return testRepos{
		db:           db,
		contributors: repository.NewContributorRepository(db),
		tasks:        repository.NewTaskRepository(db),
		attendance:   repository.NewAttendanceRepository(db),
	}
}

func mustCreateContributor(t *testing.T, repos testRepos, name, email string) *model.Contributor {
	t.Helper()
	contributor := &model.Contributor{Name: name, Email: email}
	if err := repos.contributors.Create(context.Background(), contributor); err != nil {
		t.Fatalf("failed to create contributor %s: %v", name, err)
	}
	return contributor
}
