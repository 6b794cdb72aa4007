package graph

import (
	"context"

	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type ValueEdgeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, values []*types.ValueEdge) error
}

type valueEdgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewValueEdgeRepo(db *gorm.DB, baseLog *logger.Logger) ValueEdgeRepo {
	return &valueEdgeRepo{db: db, log: baseLog.With("repo", "ValueEdgeRepo")}
}

func (r *valueEdgeRepo) Create(ctx context.Context, tx *gorm.DB, values []*types.ValueEdge) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(values) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).CreateInBatches(values, insertBatch).Error
}
