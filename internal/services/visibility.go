package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
)

// VisibilityPolicy is the read scope of one caller. Elevated roles see the
// whole graph; the restricted role sees only nodes and edges derived from
// files it holds grants on. Query services ask the policy instead of
// branching on role at every call site.
type VisibilityPolicy interface {
	ListNodes(ctx context.Context, tx *gorm.DB) ([]*types.EntityNode, error)
	ListNodesByCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.EntityNode, error)
	SearchNodes(ctx context.Context, tx *gorm.DB, mode graphrepos.SearchMode, text string) ([]*types.EntityNode, error)
	CanSeeNode(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) (bool, error)
	CanSeeEdge(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) (bool, error)
}

// VisibilityResolver builds the policy for a request's caller.
type VisibilityResolver struct {
	nodeRepo graphrepos.GraphNodeRepo
	edgeRepo graphrepos.GraphEdgeRepo
}

func NewVisibilityResolver(nodeRepo graphrepos.GraphNodeRepo, edgeRepo graphrepos.GraphEdgeRepo) *VisibilityResolver {
	return &VisibilityResolver{nodeRepo: nodeRepo, edgeRepo: edgeRepo}
}

// For returns the restricted policy for the data-analyst role and the
// elevated policy for every other role. A nil caller gets the restricted
// policy with a nil user id, which matches nothing.
func (vr *VisibilityResolver) For(rd *ctxutil.RequestData) VisibilityPolicy {
	if rd == nil {
		return &restrictedVisibility{nodeRepo: vr.nodeRepo, edgeRepo: vr.edgeRepo, userID: uuid.Nil}
	}
	if rd.Role == types.RoleDataAnalyst {
		return &restrictedVisibility{nodeRepo: vr.nodeRepo, edgeRepo: vr.edgeRepo, userID: rd.UserID}
	}
	return &elevatedVisibility{nodeRepo: vr.nodeRepo, edgeRepo: vr.edgeRepo}
}

type elevatedVisibility struct {
	nodeRepo graphrepos.GraphNodeRepo
	edgeRepo graphrepos.GraphEdgeRepo
}

func (v *elevatedVisibility) ListNodes(ctx context.Context, tx *gorm.DB) ([]*types.EntityNode, error) {
	return v.nodeRepo.ListAll(ctx, tx)
}

func (v *elevatedVisibility) ListNodesByCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.EntityNode, error) {
	return v.nodeRepo.ListByCategory(ctx, tx, categoryID)
}

func (v *elevatedVisibility) SearchNodes(ctx context.Context, tx *gorm.DB, mode graphrepos.SearchMode, text string) ([]*types.EntityNode, error) {
	return v.nodeRepo.SearchAll(ctx, tx, mode, text)
}

func (v *elevatedVisibility) CanSeeNode(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) (bool, error) {
	return true, nil
}

func (v *elevatedVisibility) CanSeeEdge(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) (bool, error) {
	return true, nil
}

type restrictedVisibility struct {
	nodeRepo graphrepos.GraphNodeRepo
	edgeRepo graphrepos.GraphEdgeRepo
	userID   uuid.UUID
}

func (v *restrictedVisibility) ListNodes(ctx context.Context, tx *gorm.DB) ([]*types.EntityNode, error) {
	return v.nodeRepo.ListForUser(ctx, tx, v.userID)
}

func (v *restrictedVisibility) ListNodesByCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.EntityNode, error) {
	return v.nodeRepo.ListForUserWithCategory(ctx, tx, v.userID, categoryID)
}

func (v *restrictedVisibility) SearchNodes(ctx context.Context, tx *gorm.DB, mode graphrepos.SearchMode, text string) ([]*types.EntityNode, error) {
	return v.nodeRepo.SearchForUser(ctx, tx, v.userID, mode, text)
}

func (v *restrictedVisibility) CanSeeNode(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) (bool, error) {
	return v.nodeRepo.IsNodeVisibleToUser(ctx, tx, v.userID, nodeID)
}

func (v *restrictedVisibility) CanSeeEdge(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) (bool, error) {
	return v.edgeRepo.IsEdgeVisibleToUser(ctx, tx, v.userID, edgeID)
}
