package graph

import (
	"context"

	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type ValueNodeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, values []*types.ValueNode) error
}

type valueNodeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewValueNodeRepo(db *gorm.DB, baseLog *logger.Logger) ValueNodeRepo {
	return &valueNodeRepo{db: db, log: baseLog.With("repo", "ValueNodeRepo")}
}

func (r *valueNodeRepo) Create(ctx context.Context, tx *gorm.DB, values []*types.ValueNode) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(values) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).CreateInBatches(values, insertBatch).Error
}
