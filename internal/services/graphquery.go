package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// NodePage is one page of visible nodes plus the total visible count.
// CategoryName is set only when the listing was category-filtered.
type NodePage struct {
	Items        []*types.EntityNode `json:"items"`
	PageIndex    int                 `json:"pageIndex"`
	TotalCount   int                 `json:"totalCount"`
	CategoryName string              `json:"categoryName,omitempty"`
}

// GraphQueryService serves paginated node listings scoped to the caller's
// visibility.
type GraphQueryService interface {
	// ListNodes pages over every node the caller can see. A non-nil
	// categoryID narrows to nodes from files in that category; a
	// nonexistent category is an error, an existing-but-empty one is an
	// empty page.
	ListNodes(ctx context.Context, categoryID *int, pageIndex, pageSize int) (*NodePage, error)
}

type graphQueryService struct {
	db           *gorm.DB
	log          *logger.Logger
	visibility   *VisibilityResolver
	categoryRepo graphrepos.CategoryRepo
}

func NewGraphQueryService(
	db *gorm.DB,
	log *logger.Logger,
	visibility *VisibilityResolver,
	categoryRepo graphrepos.CategoryRepo,
) GraphQueryService {
	return &graphQueryService{
		db:           db,
		log:          log.With("service", "GraphQueryService"),
		visibility:   visibility,
		categoryRepo: categoryRepo,
	}
}

func (gq *graphQueryService) ListNodes(ctx context.Context, categoryID *int, pageIndex, pageSize int) (*NodePage, error) {
	policy := gq.visibility.For(ctxutil.GetRequestData(ctx))

	var nodes []*types.EntityNode
	var categoryName string
	var err error
	if categoryID != nil {
		category, cErr := gq.categoryRepo.GetByID(ctx, nil, *categoryID)
		if cErr != nil {
			return nil, cErr
		}
		if category == nil {
			return nil, errors.ErrCategoryNotFound
		}
		categoryName = category.Name
		nodes, err = policy.ListNodesByCategory(ctx, nil, *categoryID)
	} else {
		nodes, err = policy.ListNodes(ctx, nil)
	}
	if err != nil {
		return nil, err
	}

	sortNodesByName(nodes)
	return &NodePage{
		Items:        paginateNodes(nodes, pageIndex, pageSize),
		PageIndex:    pageIndex,
		TotalCount:   len(nodes),
		CategoryName: categoryName,
	}, nil
}

func sortNodesByName(nodes []*types.EntityNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Name != nodes[j].Name {
			return nodes[i].Name < nodes[j].Name
		}
		return nodes[i].ID.String() < nodes[j].ID.String()
	})
}

// paginateNodes applies the page window in memory over the full visible
// set. Out-of-range windows yield an empty page, never an error.
func paginateNodes(nodes []*types.EntityNode, pageIndex, pageSize int) []*types.EntityNode {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		return []*types.EntityNode{}
	}
	start := pageIndex * pageSize
	if start >= len(nodes) {
		return []*types.EntityNode{}
	}
	end := start + pageSize
	if end > len(nodes) {
		end = len(nodes)
	}
	return nodes[start:end]
}
