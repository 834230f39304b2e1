package service

import (
	"context"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

// DashboardStats aggregates the numbers shown on the dashboard.
type DashboardStats struct {
	TotalTasks         int64
	CompletedTasks     int64
	PendingTasks       int64
	TotalContributors  int64
	RecentTasks        []model.Task
	TasksByContributor []repository.ContributorTaskCount
}

const recentTaskLimit = 5

// DashboardService builds the summary view over tasks and contributors.
type DashboardService struct {
	taskRepo        *repository.TaskRepository
	contributorRepo *repository.ContributorRepository
}

func NewDashboardService(taskRepo *repository.TaskRepository, contributorRepo *repository.ContributorRepository) *DashboardService {
	return &DashboardService{taskRepo: taskRepo, contributorRepo: contributorRepo}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalTasks, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.taskRepo.CountCompleted(ctx)
	if err != nil {
		return nil, err
	}
	totalContributors, err := s.contributorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.taskRepo.Recent(ctx, recentTaskLimit)
	if err != nil {
		return nil, err
	}
	byContributor, err := s.taskRepo.CountByContributor(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalTasks:         totalTasks,
		CompletedTasks:     completed,
		PendingTasks:       totalTasks - completed,
		TotalContributors:  totalContributors,
		RecentTasks:        recent,
		TasksByContributor: byContributor,
	}, nil
}
