package graph

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type EntityEdgeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, edges []*types.EntityEdge) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EntityEdge, error)
	// ListTouching returns every edge whose source or target is the node.
	ListTouching(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) ([]*types.EntityEdge, error)
}

type entityEdgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityEdgeRepo(db *gorm.DB, baseLog *logger.Logger) EntityEdgeRepo {
	return &entityEdgeRepo{db: db, log: baseLog.With("repo", "EntityEdgeRepo")}
}

func (r *entityEdgeRepo) Create(ctx context.Context, tx *gorm.DB, edges []*types.EntityEdge) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(edges) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).CreateInBatches(edges, insertBatch).Error
}

func (r *entityEdgeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EntityEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var edge types.EntityEdge
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&edge).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (r *entityEdgeRepo) ListTouching(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) ([]*types.EntityEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityEdge
	if err := transaction.WithContext(ctx).
		Where("source_entity_id = ? OR target_entity_id = ?", nodeID, nodeID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
