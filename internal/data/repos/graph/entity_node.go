package graph

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// insertBatch caps how many rows go into one INSERT. Postgres allows at
// most 65535 bind parameters per statement; 5000 rows of the widest table
// here stays well under that.
const insertBatch = 5000

type EntityNodeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, nodes []*types.EntityNode) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EntityNode, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.EntityNode, error)
	// GetIDByName resolves an entity name to its id; ok is false when no
	// entity carries the name.
	GetIDByName(ctx context.Context, tx *gorm.DB, name string) (uuid.UUID, bool, error)
}

type entityNodeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityNodeRepo(db *gorm.DB, baseLog *logger.Logger) EntityNodeRepo {
	return &entityNodeRepo{db: db, log: baseLog.With("repo", "EntityNodeRepo")}
}

func (r *entityNodeRepo) Create(ctx context.Context, tx *gorm.DB, nodes []*types.EntityNode) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(nodes) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).CreateInBatches(nodes, insertBatch).Error
}

func (r *entityNodeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var node types.EntityNode
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&node).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &node, nil
}

func (r *entityNodeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *entityNodeRepo) GetIDByName(ctx context.Context, tx *gorm.DB, name string) (uuid.UUID, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var node types.EntityNode
	err := transaction.WithContext(ctx).
		Select("id").
		Where("name = ?", name).
		First(&node).Error
	if err == gorm.ErrRecordNotFound {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return node.ID, true, nil
}
