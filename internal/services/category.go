package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// CategoryPage is one page of categories.
type CategoryPage struct {
	Categories []*types.Category `json:"categories"`
	Total      int               `json:"total"`
}

type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*types.Category, error)
	ListCategories(ctx context.Context, page, limit int) (*CategoryPage, error)
	RenameCategory(ctx context.Context, id int, name string) (*types.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo graphrepos.CategoryRepo
}

func NewCategoryService(db *gorm.DB, log *logger.Logger, categoryRepo graphrepos.CategoryRepo) CategoryService {
	return &categoryService{
		db:           db,
		log:          log.With("service", "CategoryService"),
		categoryRepo: categoryRepo,
	}
}

func (cs *categoryService) CreateCategory(ctx context.Context, name string) (*types.Category, error) {
	name = strings.TrimSpace(name)
	existing, err := cs.categoryRepo.GetByName(ctx, nil, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCategoryExists
	}

	category := &types.Category{Name: name}
	if err := cs.categoryRepo.Create(ctx, nil, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (cs *categoryService) ListCategories(ctx context.Context, page, limit int) (*CategoryPage, error) {
	categories, err := cs.categoryRepo.List(ctx, nil, page, limit)
	if err != nil {
		return nil, err
	}
	total, err := cs.categoryRepo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*types.Category{}
	}
	return &CategoryPage{Categories: categories, Total: int(total)}, nil
}

func (cs *categoryService) RenameCategory(ctx context.Context, id int, name string) (*types.Category, error) {
	name = strings.TrimSpace(name)
	category, err := cs.categoryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrCategoryNotFound
	}

	other, err := cs.categoryRepo.GetByName(ctx, nil, name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, errors.ErrCategoryExists
	}

	if err := cs.categoryRepo.UpdateName(ctx, nil, id, name); err != nil {
		return nil, err
	}
	category.Name = name
	return category, nil
}

func (cs *categoryService) DeleteCategory(ctx context.Context, id int) error {
	category, err := cs.categoryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.ErrCategoryNotFound
	}
	return cs.categoryRepo.Delete(ctx, nil, id)
}
