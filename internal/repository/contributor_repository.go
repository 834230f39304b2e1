package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskassign/internal/model"
)

// ContributorRepository handles CRUD for contributors.
type ContributorRepository struct {
	db *gorm.DB
}

func NewContributorRepository(db *gorm.DB) *ContributorRepository {
	return &ContributorRepository{db: db}
}

func (r *ContributorRepository) Create(ctx context.Context, contributor *model.Contributor) error {
	if err := r.db.WithContext(ctx).Create(contributor).Error; err != nil {
		return fmt.Errorf("create contributor: %w", translate(err))
	}
	return nil
}

func (r *ContributorRepository) Save(ctx context.Context, contributor *model.Contributor) error {
	if err := r.db.WithContext(ctx).Save(contributor).Error; err != nil {
		return fmt.Errorf("save contributor: %w", translate(err))
	}
	return nil
}

func (r *ContributorRepository) FindByID(ctx context.Context, id uint) (*model.Contributor, error) {
	var contributor model.Contributor
	if err := r.db.WithContext(ctx).First(&contributor, id).Error; err != nil {
		return nil, fmt.Errorf("find contributor: %w", translate(err))
	}
	return &contributor, nil
}

// Delete removes a contributor. The foreign key constraints cascade the
// delete to every task and attendance record the contributor owns.
func (r *ContributorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Contributor{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete contributor: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns one page of contributors ordered by name ascending.
func (r *ContributorRepository) List(ctx context.Context, page, size int) ([]model.Contributor, PageInfo, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Contributor{}).Count(&total).Error; err != nil {
		return nil, PageInfo{}, fmt.Errorf("count contributors: %w", err)
	}
	info := pageInfo(page, size, total)

	var contributors []model.Contributor
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(info.Size).Offset(info.offset()).
		Find(&contributors).Error; err != nil {
		return nil, PageInfo{}, fmt.Errorf("list contributors: %w", err)
	}
	return contributors, info, nil
}

// ListAll returns every contributor ordered by name, for dropdowns and
// attendance reconciliation.
func (r *ContributorRepository) ListAll(ctx context.Context) ([]model.Contributor, error) {
	var contributors []model.Contributor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&contributors).Error; err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}
	return contributors, nil
}

func (r *ContributorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Contributor{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count contributors: %w", err)
	}
	return total, nil
}
