package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/analysisdata/graph-backend/internal/data/repos/testutil"
	types "github.com/analysisdata/graph-backend/internal/domain"
)

func TestUserRepoRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewUserRepo(db, testutil.Logger(t))

	u := &types.User{
		ID:       uuid.New(),
		Username: "roundtrip",
		Password: "hashed",
		Email:    "roundtrip@example.com",
		Role:     types.RoleDataAnalyst,
	}
	if err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByUsername(ctx, tx, "roundtrip")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("GetByUsername: got %+v", got)
	}

	missing, err := repo.GetByUsername(ctx, tx, "no-such-user")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByUsername: expected nil for unknown username, got %+v", missing)
	}
}

func TestSearchByUsernamePrefix(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewUserRepo(db, testutil.Logger(t))

	for _, name := range []string{"ana", "anabel", "bernard"} {
		testutil.SeedUser(t, ctx, tx, name, types.RoleDataAnalyst)
	}

	got, err := repo.SearchByUsernamePrefix(ctx, tx, "ana", 10)
	if err != nil {
		t.Fatalf("SearchByUsernamePrefix: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("SearchByUsernamePrefix: got %d users, want 2", len(got))
	}
	if got[0].Username != "ana" || got[1].Username != "anabel" {
		t.Fatalf("SearchByUsernamePrefix: unexpected order %v", []string{got[0].Username, got[1].Username})
	}

	limited, err := repo.SearchByUsernamePrefix(ctx, tx, "ana", 1)
	if err != nil {
		t.Fatalf("SearchByUsernamePrefix: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("SearchByUsernamePrefix: limit not applied, got %d", len(limited))
	}
}
