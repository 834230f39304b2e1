package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskassign/internal/model"
)

// TaskFilter narrows task listings. Zero values mean "no filter".
type TaskFilter struct {
	Status        string // StatusCompleted, StatusPending or empty
	ContributorID uint
}

// Recognized completion-status filter values. Anything else is ignored.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// ContributorTaskCount pairs a contributor with how many tasks they own.
type ContributorTaskCount struct {
	ContributorID uint
	Name          string
	TaskCount     int64
}

// TaskRepository handles CRUD and filtered reads for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create persists a new task after model-level validation, so the date
// ordering invariant holds even for writes that bypass the form layer.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", translate(err))
	}
	return nil
}

// Save persists changes to an existing task, re-running model validation.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", translate(err))
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Preload("Contributor").First(&task, id).Error; err != nil {
		return nil, fmt.Errorf("find task: %w", translate(err))
	}
	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleCompleted flips is_completed in a single UPDATE, so the
// read-flip-write sequence cannot interleave with another writer, and
// returns the new value. Date rules are not re-checked: the stored record
// is already valid.
func (r *TaskRepository) ToggleCompleted(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("is_completed", gorm.Expr("NOT is_completed"))
	if result.Error != nil {
		return false, fmt.Errorf("toggle task: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return false, ErrNotFound
	}

	var task model.Task
	if err := r.db.WithContext(ctx).Select("is_completed").First(&task, id).Error; err != nil {
		return false, fmt.Errorf("toggle task: %w", translate(err))
	}
	return task.IsCompleted, nil
}

// List returns one page of tasks matching the filter, ordered by start
// descending (most recent first).
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, page, size int) ([]model.Task, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})
	switch filter.Status {
	case StatusCompleted:
		query = query.Where("is_completed = ?", true)
	case StatusPending:
		query = query.Where("is_completed = ?", false)
	}
	if filter.ContributorID != 0 {
		query = query.Where("contributor_id = ?", filter.ContributorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, fmt.Errorf("count tasks: %w", err)
	}
	info := pageInfo(page, size, total)

	var tasks []model.Task
	if err := query.
		Preload("Contributor").
		Order("start DESC").
		Limit(info.Size).Offset(info.offset()).
		Find(&tasks).Error; err != nil {
		return nil, PageInfo{}, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, info, nil
}

// ListByContributor returns all tasks owned by one contributor, most recent
// first.
func (r *TaskRepository) ListByContributor(ctx context.Context, contributorID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("contributor_id = ?", contributorID).
		Order("start DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks by contributor: %w", err)
	}
	return tasks, nil
}

// ListPending returns all uncompleted tasks with their contributors, for
// the digest report.
func (r *TaskRepository) ListPending(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Preload("Contributor").
		Where("is_completed = ?", false).
		Order("end_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}
	return tasks, nil
}

// Recent returns the most recent tasks by start descending.
func (r *TaskRepository) Recent(ctx context.Context, limit int) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Preload("Contributor").
		Order("start DESC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list recent tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, nil
}

func (r *TaskRepository) CountCompleted(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("is_completed = ?", true).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return total, nil
}

// CountByContributor returns per-contributor task counts. Grouping over the
// tasks table only yields contributors owning at least one task.
func (r *TaskRepository) CountByContributor(ctx context.Context) ([]ContributorTaskCount, error) {
	var counts []ContributorTaskCount
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("tasks.contributor_id AS contributor_id, contributors.name AS name, COUNT(*) AS task_count").
		Joins("JOIN contributors ON contributors.id = tasks.contributor_id").
		Group("tasks.contributor_id, contributors.name").
		Order("task_count DESC, name ASC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("count tasks by contributor: %w", err)
	}
	return counts, nil
}
