package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// NodeInfoService serves attribute/value detail for a single node or
// edge as an attribute-name to value map. A hidden node or edge reads as
// not found, and so does one with no values: the detail endpoints never
// reveal that a hidden id exists.
type NodeInfoService interface {
	GetNodeAttributes(ctx context.Context, nodeID uuid.UUID) (map[string]string, error)
	GetEdgeAttributes(ctx context.Context, edgeID uuid.UUID) (map[string]string, error)
}

type nodeInfoService struct {
	db             *gorm.DB
	log            *logger.Logger
	visibility     *VisibilityResolver
	entityNodeRepo graphrepos.EntityNodeRepo
	entityEdgeRepo graphrepos.EntityEdgeRepo
	graphNodeRepo  graphrepos.GraphNodeRepo
	graphEdgeRepo  graphrepos.GraphEdgeRepo
}

func NewNodeInfoService(
	db *gorm.DB,
	log *logger.Logger,
	visibility *VisibilityResolver,
	entityNodeRepo graphrepos.EntityNodeRepo,
	entityEdgeRepo graphrepos.EntityEdgeRepo,
	graphNodeRepo graphrepos.GraphNodeRepo,
	graphEdgeRepo graphrepos.GraphEdgeRepo,
) NodeInfoService {
	return &nodeInfoService{
		db:             db,
		log:            log.With("service", "NodeInfoService"),
		visibility:     visibility,
		entityNodeRepo: entityNodeRepo,
		entityEdgeRepo: entityEdgeRepo,
		graphNodeRepo:  graphNodeRepo,
		graphEdgeRepo:  graphEdgeRepo,
	}
}

func (ni *nodeInfoService) GetNodeAttributes(ctx context.Context, nodeID uuid.UUID) (map[string]string, error) {
	node, err := ni.entityNodeRepo.GetByID(ctx, nil, nodeID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, errors.ErrNodeNotFound
	}

	policy := ni.visibility.For(ctxutil.GetRequestData(ctx))
	visible, err := policy.CanSeeNode(ctx, nil, nodeID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.ErrNodeNotFound
	}

	values, err := ni.graphNodeRepo.GetNodeAttributeValues(ctx, nil, nodeID)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.ErrNodeNotFound
	}
	return attributeMap(values), nil
}

func (ni *nodeInfoService) GetEdgeAttributes(ctx context.Context, edgeID uuid.UUID) (map[string]string, error) {
	edge, err := ni.entityEdgeRepo.GetByID(ctx, nil, edgeID)
	if err != nil {
		return nil, err
	}
	if edge == nil {
		return nil, errors.ErrEdgeNotFound
	}

	policy := ni.visibility.For(ctxutil.GetRequestData(ctx))
	visible, err := policy.CanSeeEdge(ctx, nil, edgeID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.ErrEdgeNotFound
	}

	values, err := ni.graphEdgeRepo.GetEdgeAttributeValues(ctx, nil, edgeID)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.ErrEdgeNotFound
	}
	return attributeMap(values), nil
}

func attributeMap(values []graphrepos.AttributeValue) map[string]string {
	out := make(map[string]string, len(values))
	for _, v := range values {
		out[v.Attribute] = v.Value
	}
	return out
}
