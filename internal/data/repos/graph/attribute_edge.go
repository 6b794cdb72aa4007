package graph

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type AttributeEdgeRepo interface {
	GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.AttributeEdge, error)
	CreateIgnoreConflicts(ctx context.Context, tx *gorm.DB, attrs []*types.AttributeEdge) error
}

type attributeEdgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttributeEdgeRepo(db *gorm.DB, baseLog *logger.Logger) AttributeEdgeRepo {
	return &attributeEdgeRepo{db: db, log: baseLog.With("repo", "AttributeEdgeRepo")}
}

func (r *attributeEdgeRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.AttributeEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AttributeEdge
	if len(names) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("name IN ?", names).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *attributeEdgeRepo) CreateIgnoreConflicts(ctx context.Context, tx *gorm.DB, attrs []*types.AttributeEdge) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(attrs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&attrs).Error
}
