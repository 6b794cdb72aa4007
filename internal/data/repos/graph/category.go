package graph

import (
	"context"

	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, category *types.Category) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.Category, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error)
	List(ctx context.Context, tx *gorm.DB, page, limit int) ([]*types.Category, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	UpdateName(ctx context.Context, tx *gorm.DB, id int, name string) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(ctx context.Context, tx *gorm.DB, category *types.Category) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var category types.Category
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var category types.Category
	err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) List(ctx context.Context, tx *gorm.DB, page, limit int) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Category
	if err := transaction.WithContext(ctx).
		Order("id").
		Offset(page * limit).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *categoryRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Category{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepo) UpdateName(ctx context.Context, tx *gorm.DB, id int, name string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Category{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Category{}).Error
}
