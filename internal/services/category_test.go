package services

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/analysisdata/graph-backend/internal/pkg/errors"
)

func TestCategoryLifecycle(t *testing.T) {
	svc := NewCategoryService(nil, serviceLogger(t), newFakeCategoryRepo())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, " Suppliers ")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.Name != "Suppliers" {
		t.Fatalf("CreateCategory: name not trimmed, got %q", created.Name)
	}

	if _, err := svc.CreateCategory(ctx, "Suppliers"); !errors.Is(err, pkgerrors.ErrCategoryExists) {
		t.Fatalf("CreateCategory: expected ErrCategoryExists, got %v", err)
	}

	renamed, err := svc.RenameCategory(ctx, created.ID, "Vendors")
	if err != nil {
		t.Fatalf("RenameCategory: %v", err)
	}
	if renamed.Name != "Vendors" {
		t.Fatalf("RenameCategory: got %q", renamed.Name)
	}

	page, err := svc.ListCategories(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if page.Total != 1 || len(page.Categories) != 1 {
		t.Fatalf("ListCategories: unexpected %+v", page)
	}

	if err := svc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if err := svc.DeleteCategory(ctx, created.ID); !errors.Is(err, pkgerrors.ErrCategoryNotFound) {
		t.Fatalf("DeleteCategory: expected ErrCategoryNotFound, got %v", err)
	}
}

func TestRenameCategoryConflicts(t *testing.T) {
	svc := NewCategoryService(nil, serviceLogger(t), newFakeCategoryRepo())
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, "First")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := svc.CreateCategory(ctx, "Second"); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if _, err := svc.RenameCategory(ctx, first.ID, "Second"); !errors.Is(err, pkgerrors.ErrCategoryExists) {
		t.Fatalf("RenameCategory: expected ErrCategoryExists, got %v", err)
	}
	// Renaming to its own name is allowed.
	if _, err := svc.RenameCategory(ctx, first.ID, "First"); err != nil {
		t.Fatalf("RenameCategory: %v", err)
	}

	if _, err := svc.RenameCategory(ctx, 999, "Whatever"); !errors.Is(err, pkgerrors.ErrCategoryNotFound) {
		t.Fatalf("RenameCategory: expected ErrCategoryNotFound, got %v", err)
	}
}
