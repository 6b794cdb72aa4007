package graph

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type AttributeNodeRepo interface {
	GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.AttributeNode, error)
	// CreateIgnoreConflicts bulk-inserts, silently skipping rows whose name
	// already exists. Callers refetch by name to observe the winner.
	CreateIgnoreConflicts(ctx context.Context, tx *gorm.DB, attrs []*types.AttributeNode) error
}

type attributeNodeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttributeNodeRepo(db *gorm.DB, baseLog *logger.Logger) AttributeNodeRepo {
	return &attributeNodeRepo{db: db, log: baseLog.With("repo", "AttributeNodeRepo")}
}

func (r *attributeNodeRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.AttributeNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AttributeNode
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

func (r *attributeNodeRepo) CreateIgnoreConflicts(ctx context.Context, tx *gorm.DB, attrs []*types.AttributeNode) error {
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
