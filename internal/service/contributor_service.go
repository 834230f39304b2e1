package service

import (
	"context"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

// ContributorInput carries candidate field values for a contributor.
type ContributorInput struct {
	Name  string `form:"name" validate:"required,max=100"`
	Email string `form:"email" validate:"required,email,max=255"`
}

// ContributorService wraps contributor CRUD with input validation.
type ContributorService struct {
	contributorRepo *repository.ContributorRepository
	taskRepo        *repository.TaskRepository
}

func NewContributorService(contributorRepo *repository.ContributorRepository, taskRepo *repository.TaskRepository) *ContributorService {
	return &ContributorService{contributorRepo: contributorRepo, taskRepo: taskRepo}
}

func (s *ContributorService) Create(ctx context.Context, input ContributorInput) (*model.Contributor, error) {
	if errs := fieldErrors(validate.Struct(input)); errs.Any() {
		return nil, errs
	}
	contributor := model.Contributor{Name: input.Name, Email: input.Email}
	if err := s.contributorRepo.Create(ctx, &contributor); err != nil {
		return nil, err
	}
	return &contributor, nil
}

func (s *ContributorService) Update(ctx context.Context, id uint, input ContributorInput) (*model.Contributor, error) {
	contributor, err := s.contributorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := fieldErrors(validate.Struct(input)); errs.Any() {
		return nil, errs
	}
	contributor.Name = input.Name
	contributor.Email = input.Email
	if err := s.contributorRepo.Save(ctx, contributor); err != nil {
		return nil, err
	}
	return contributor, nil
}

func (s *ContributorService) Get(ctx context.Context, id uint) (*model.Contributor, error) {
	return s.contributorRepo.FindByID(ctx, id)
}

// GetWithTasks loads a contributor together with their tasks for the detail
// page.
func (s *ContributorService) GetWithTasks(ctx context.Context, id uint) (*model.Contributor, []model.Task, error) {
	contributor, err := s.contributorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.taskRepo.ListByContributor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return contributor, tasks, nil
}

// Delete removes a contributor; the store cascades to their tasks and
// attendance records.
func (s *ContributorService) Delete(ctx context.Context, id uint) error {
	return s.contributorRepo.Delete(ctx, id)
}

func (s *ContributorService) List(ctx context.Context, page, size int) ([]model.Contributor, repository.PageInfo, error) {
	return s.contributorRepo.List(ctx, page, size)
}

func (s *ContributorService) ListAll(ctx context.Context) ([]model.Contributor, error) {
	return s.contributorRepo.ListAll(ctx)
}
