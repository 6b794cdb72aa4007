package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// NodeSearchService finds visible nodes by name substring, prefix or
// suffix. A search matching nothing the caller can see reads as not
// found.
type NodeSearchService interface {
	SearchNodes(ctx context.Context, text, rawMode string, pageIndex, pageSize int) (*NodePage, error)
}

type nodeSearchService struct {
	db         *gorm.DB
	log        *logger.Logger
	visibility *VisibilityResolver
}

func NewNodeSearchService(db *gorm.DB, log *logger.Logger, visibility *VisibilityResolver) NodeSearchService {
	return &nodeSearchService{
		db:         db,
		log:        log.With("service", "NodeSearchService"),
		visibility: visibility,
	}
}

func (ns *nodeSearchService) SearchNodes(ctx context.Context, text, rawMode string, pageIndex, pageSize int) (*NodePage, error) {
	text = strings.TrimSpace(text)

	policy := ns.visibility.For(ctxutil.GetRequestData(ctx))
	mode := graphrepos.ParseSearchMode(rawMode)
	nodes, err := policy.SearchNodes(ctx, nil, mode, text)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, errors.ErrNodeNotFound
	}

	sortNodesByName(nodes)
	return &NodePage{
		Items:      paginateNodes(nodes, pageIndex, pageSize),
		PageIndex:  pageIndex,
		TotalCount: len(nodes),
	}, nil
}
