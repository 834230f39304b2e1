package service

import (
	"context"
	"errors"
	"time"

	"taskassign/internal/model"
	"taskassign/internal/repository"
)

// TaskInput carries candidate field values for a task.
type TaskInput struct {
	Title         string    `form:"title" validate:"required,max=200"`
	Description   string    `form:"description" validate:"max=500"`
	Start         time.Time `form:"start" validate:"required"`
	EndDate       time.Time `form:"end_date" validate:"required"`
	IsCompleted   bool      `form:"is_completed"`
	ContributorID uint      `form:"contributor" validate:"required"`
}

// TaskService wraps task CRUD with input validation.
type TaskService struct {
	taskRepo        *repository.TaskRepository
	contributorRepo *repository.ContributorRepository

	now func() time.Time
}

func NewTaskService(taskRepo *repository.TaskRepository, contributorRepo *repository.ContributorRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, contributorRepo: contributorRepo, now: time.Now}
}

// checkInput runs field and cross-field validation on candidate values.
// The past-start rule applies only here, at the input boundary: stored
// tasks whose start has since passed must remain editable.
func (s *TaskService) checkInput(ctx context.Context, input TaskInput) *model.ValidationErrors {
	errs := fieldErrors(validate.Struct(input))
	if !input.Start.IsZero() && input.Start.Before(s.now()) {
		errs.Add("start", model.MsgPastStart)
	}
	if !input.Start.IsZero() && !input.EndDate.IsZero() &&
		!model.DateOf(input.EndDate).After(model.DateOf(input.Start)) {
		errs.Add("end_date", model.MsgEndBeforeStart)
	}
	if input.ContributorID != 0 {
		if _, err := s.contributorRepo.FindByID(ctx, input.ContributorID); errors.Is(err, repository.ErrNotFound) {
			errs.Add("contributor", "Select a valid contributor.")
		}
	}
	if errs.Any() {
		return errs
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if errs := s.checkInput(ctx, input); errs != nil {
		return nil, errs
	}
	task := model.Task{
		Title:         input.Title,
		Description:   input.Description,
		Start:         input.Start,
		EndDate:       model.DateOf(input.EndDate),
		IsCompleted:   input.IsCompleted,
		ContributorID: input.ContributorID,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, id uint, input TaskInput) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := s.checkInput(ctx, input); errs != nil {
		return nil, errs
	}
	task.Title = input.Title
	task.Description = input.Description
	task.Start = input.Start
	task.EndDate = model.DateOf(input.EndDate)
	task.IsCompleted = input.IsCompleted
	task.ContributorID = input.ContributorID
	task.Contributor = nil
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

// ToggleCompleted flips a task's completion flag and reports the new value.
func (s *TaskService) ToggleCompleted(ctx context.Context, id uint) (bool, error) {
	return s.taskRepo.ToggleCompleted(ctx, id)
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter, page, size int) ([]model.Task, repository.PageInfo, error) {
	return s.taskRepo.List(ctx, filter, page, size)
}
