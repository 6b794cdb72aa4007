package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// NeighborGraph is a node's direct neighborhood: every edge touching the
// node plus the distinct entities at the other end of those edges.
type NeighborGraph struct {
	Nodes []*types.EntityNode `json:"nodes"`
	Edges []*types.EntityEdge `json:"edges"`
}

// NodeRelationService expands a node's direct neighborhood. Error order is
// fixed: a missing node reads as not found, an existing node the caller
// cannot see reads as not accessible, and only then is an empty
// neighborhood reported. This is the one read path where denial is
// distinguishable from absence.
type NodeRelationService interface {
	ExpandNeighbors(ctx context.Context, nodeID uuid.UUID) (*NeighborGraph, error)
}

type nodeRelationService struct {
	db             *gorm.DB
	log            *logger.Logger
	visibility     *VisibilityResolver
	entityNodeRepo graphrepos.EntityNodeRepo
	entityEdgeRepo graphrepos.EntityEdgeRepo
}

func NewNodeRelationService(
	db *gorm.DB,
	log *logger.Logger,
	visibility *VisibilityResolver,
	entityNodeRepo graphrepos.EntityNodeRepo,
	entityEdgeRepo graphrepos.EntityEdgeRepo,
) NodeRelationService {
	return &nodeRelationService{
		db:             db,
		log:            log.With("service", "NodeRelationService"),
		visibility:     visibility,
		entityNodeRepo: entityNodeRepo,
		entityEdgeRepo: entityEdgeRepo,
	}
}

func (nr *nodeRelationService) ExpandNeighbors(ctx context.Context, nodeID uuid.UUID) (*NeighborGraph, error) {
	node, err := nr.entityNodeRepo.GetByID(ctx, nil, nodeID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, errors.ErrNodeNotFound
	}

	policy := nr.visibility.For(ctxutil.GetRequestData(ctx))
	visible, err := policy.CanSeeNode(ctx, nil, nodeID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errors.ErrNodeNotAccessible
	}

	edges, err := nr.entityEdgeRepo.ListTouching(ctx, nil, nodeID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, errors.ErrNodeHasNoEdges
	}

	// Distinct other-endpoint ids; a self-loop contributes the node
	// itself.
	seen := make(map[uuid.UUID]bool, len(edges))
	neighborIDs := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		neighborID := edge.TargetEntityID
		if neighborID == nodeID {
			neighborID = edge.SourceEntityID
		}
		if seen[neighborID] {
			continue
		}
		seen[neighborID] = true
		neighborIDs = append(neighborIDs, neighborID)
	}

	neighbors, err := nr.entityNodeRepo.GetByIDs(ctx, nil, neighborIDs)
	if err != nil {
		return nil, err
	}
	sortNodesByName(neighbors)

	return &NeighborGraph{Nodes: neighbors, Edges: edges}, nil
}
