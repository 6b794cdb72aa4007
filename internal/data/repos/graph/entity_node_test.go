package graph

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/analysisdata/graph-backend/internal/data/repos/testutil"
	types "github.com/analysisdata/graph-backend/internal/domain"
)

// One flush can hold far more rows than fit in a single INSERT's 65535
// bind parameters, so Create must split into sub-batches.
func TestEntityNodeCreateSplitsLargeFlush(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	uploader := testutil.SeedUser(t, ctx, tx, "bulkuploader", types.RoleAdmin)
	category := testutil.SeedCategory(t, ctx, tx, "bulk")
	file := testutil.SeedFile(t, ctx, tx, uploader.ID, category.ID, "bulk.csv")

	total := insertBatch + 500
	nodes := make([]*types.EntityNode, total)
	for i := range nodes {
		nodes[i] = &types.EntityNode{
			ID:     uuid.New(),
			Name:   fmt.Sprintf("bulk-%d", i),
			FileID: file.ID,
		}
	}

	repo := NewEntityNodeRepo(db, testutil.Logger(t))
	if err := repo.Create(ctx, tx, nodes); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var count int64
	if err := tx.WithContext(ctx).
		Model(&types.EntityNode{}).
		Where("file_id = ?", file.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != int64(total) {
		t.Fatalf("persisted nodes: got %d, want %d", count, total)
	}
}
