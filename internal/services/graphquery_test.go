package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/analysisdata/graph-backend/internal/domain"
	pkgerrors "github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

func serviceLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func elevatedCtx() context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID: uuid.New(),
		Role:   "admin",
	})
}

func elevatedCtxAs(userID uuid.UUID) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID: userID,
		Role:   types.RoleAdmin,
	})
}

func analystCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID: userID,
		Role:   types.RoleDataAnalyst,
	})
}

func TestListNodesPagination(t *testing.T) {
	f := newGraphFixture()
	f.addNode("charlie", 1)
	f.addNode("alpha", 1)
	f.addNode("beta", 1)

	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewGraphQueryService(nil, serviceLogger(t), resolver, newFakeCategoryRepo())

	page, err := svc.ListNodes(elevatedCtx(), nil, 0, 2)
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	if page.TotalCount != 3 {
		t.Fatalf("TotalCount: got %d, want 3", page.TotalCount)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "alpha" || page.Items[1].Name != "beta" {
		t.Fatalf("page 0: unexpected %v", page.Items)
	}

	page, err = svc.ListNodes(elevatedCtx(), nil, 1, 2)
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	if page.PageIndex != 1 || len(page.Items) != 1 || page.Items[0].Name != "charlie" {
		t.Fatalf("page 1: unexpected %+v", page)
	}

	// Out-of-range window is an empty page, not an error.
	page, err = svc.ListNodes(elevatedCtx(), nil, 10, 2)
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	if len(page.Items) != 0 || page.TotalCount != 3 {
		t.Fatalf("out-of-range: unexpected %+v", page)
	}
}

func TestListNodesUnknownCategory(t *testing.T) {
	f := newGraphFixture()
	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewGraphQueryService(nil, serviceLogger(t), resolver, newFakeCategoryRepo())

	missing := 42
	_, err := svc.ListNodes(elevatedCtx(), &missing, 0, 10)
	if !errors.Is(err, pkgerrors.ErrCategoryNotFound) {
		t.Fatalf("ListNodes: expected ErrCategoryNotFound, got %v", err)
	}
}

func TestListNodesEmptyCategoryIsEmptyPage(t *testing.T) {
	f := newGraphFixture()
	f.addNode("alpha", 1)
	f.fileCategory[1] = 99

	categories := newFakeCategoryRepo()
	empty := &types.Category{Name: "empty"}
	if err := categories.Create(context.Background(), nil, empty); err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewGraphQueryService(nil, serviceLogger(t), resolver, categories)

	page, err := svc.ListNodes(elevatedCtx(), &empty.ID, 0, 10)
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	if page.TotalCount != 0 || len(page.Items) != 0 {
		t.Fatalf("empty category: unexpected %+v", page)
	}
	if page.CategoryName != "empty" {
		t.Fatalf("CategoryName: got %q, want %q", page.CategoryName, "empty")
	}
}

func TestListNodesRestrictedScope(t *testing.T) {
	f := newGraphFixture()
	visible := f.addNode("alpha", 1)
	f.addNode("beta", 2)

	userID := uuid.New()
	f.grant(userID, 1)

	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewGraphQueryService(nil, serviceLogger(t), resolver, newFakeCategoryRepo())

	page, err := svc.ListNodes(analystCtx(userID), nil, 0, 10)
	if err != nil {
		t.Fatalf("ListNodes: %v", err)
	}
	if page.TotalCount != 1 || page.Items[0].ID != visible.ID {
		t.Fatalf("restricted listing: unexpected %+v", page)
	}
}
