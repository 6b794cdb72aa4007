package graph

import (
	"context"
	"testing"

	"github.com/analysisdata/graph-backend/internal/data/repos/testutil"
	types "github.com/analysisdata/graph-backend/internal/domain"
)

func TestRevokeScopedToExactPair(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "alice", types.RoleDataAnalyst)
	bob := testutil.SeedUser(t, ctx, tx, "bob", types.RoleDataAnalyst)
	category := testutil.SeedCategory(t, ctx, tx, "grants")
	fileA := testutil.SeedFile(t, ctx, tx, alice.ID, category.ID, "a.csv")
	fileB := testutil.SeedFile(t, ctx, tx, alice.ID, category.ID, "b.csv")

	testutil.SeedGrant(t, ctx, tx, alice.ID, fileA.ID)
	testutil.SeedGrant(t, ctx, tx, alice.ID, fileB.ID)
	testutil.SeedGrant(t, ctx, tx, bob.ID, fileA.ID)

	repo := NewUserFileGrantRepo(db, testutil.Logger(t))
	if err := repo.Revoke(ctx, tx, alice.ID, fileA.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	// Alice keeps her other file, Bob keeps the revoked file.
	aliceFiles, err := repo.ListFileIDsForUser(ctx, tx, alice.ID)
	if err != nil {
		t.Fatalf("ListFileIDsForUser: %v", err)
	}
	if len(aliceFiles) != 1 || aliceFiles[0] != fileB.ID {
		t.Fatalf("alice files after revoke: got %v, want [%d]", aliceFiles, fileB.ID)
	}

	fileAUsers, err := repo.ListUserIDsForFile(ctx, tx, fileA.ID)
	if err != nil {
		t.Fatalf("ListUserIDsForFile: %v", err)
	}
	if len(fileAUsers) != 1 || fileAUsers[0] != bob.ID {
		t.Fatalf("file A users after revoke: got %v, want [%v]", fileAUsers, bob.ID)
	}
}
