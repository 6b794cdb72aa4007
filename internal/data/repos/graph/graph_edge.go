package graph

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// GraphEdgeRepo serves the role-scoped read path over entity edges.
// Edge visibility follows the edge's source node: a restricted user sees
// an edge iff they hold a grant on the file the source node came from.
type GraphEdgeRepo interface {
	GetEdgeAttributeValues(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) ([]AttributeValue, error)
	IsEdgeVisibleToUser(ctx context.Context, tx *gorm.DB, userID, edgeID uuid.UUID) (bool, error)
}

type graphEdgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGraphEdgeRepo(db *gorm.DB, baseLog *logger.Logger) GraphEdgeRepo {
	return &graphEdgeRepo{db: db, log: baseLog.With("repo", "GraphEdgeRepo")}
}

func (r *graphEdgeRepo) GetEdgeAttributeValues(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) ([]AttributeValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []AttributeValue
	if err := transaction.WithContext(ctx).
		Model(&types.ValueEdge{}).
		Select("attribute_edge.name AS attribute, value_edge.value AS value").
		Joins("JOIN attribute_edge ON attribute_edge.id = value_edge.attribute_id").
		Where("value_edge.edge_id = ?", edgeID).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphEdgeRepo) IsEdgeVisibleToUser(ctx context.Context, tx *gorm.DB, userID, edgeID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.EntityEdge{}).
		Joins("JOIN entity_node ON entity_node.id = entity_edge.source_entity_id").
		Joins("JOIN user_file_grant ON user_file_grant.file_id = entity_node.file_id").
		Where("entity_edge.id = ?", edgeID).
		Where("user_file_grant.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
