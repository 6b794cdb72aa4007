package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username, role string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Username:  username,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Email:     username + "@example.com",
		Role:      role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := &types.Category{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedFile(tb testing.TB, ctx context.Context, tx *gorm.DB, uploaderID uuid.UUID, categoryID int, name string) *types.FileEntity {
	tb.Helper()
	f := &types.FileEntity{
		UploaderID:  uploaderID,
		CategoryID:  categoryID,
		FileName:    name,
		UploadDate:  time.Now().UTC(),
		IngestStats: datatypes.JSON([]byte("{}")),
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed file: %v", err)
	}
	return f
}

func SeedGrant(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, fileID int) *types.UserFileGrant {
	tb.Helper()
	g := &types.UserFileGrant{
		ID:     uuid.New(),
		UserID: userID,
		FileID: fileID,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed grant: %v", err)
	}
	return g
}

func SeedEntityNode(tb testing.TB, ctx context.Context, tx *gorm.DB, fileID int, name string) *types.EntityNode {
	tb.Helper()
	n := &types.EntityNode{
		ID:     uuid.New(),
		Name:   name,
		FileID: fileID,
	}
	if err := tx.WithContext(ctx).Create(n).Error; err != nil {
		tb.Fatalf("seed entity node: %v", err)
	}
	return n
}

func SeedAttributeNode(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.AttributeNode {
	tb.Helper()
	a := &types.AttributeNode{ID: uuid.New(), Name: name}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed attribute node: %v", err)
	}
	return a
}

func SeedValueNode(tb testing.TB, ctx context.Context, tx *gorm.DB, entityID, attributeID uuid.UUID, value string) *types.ValueNode {
	tb.Helper()
	v := &types.ValueNode{
		ID:          uuid.New(),
		EntityID:    entityID,
		AttributeID: attributeID,
		Value:       value,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed value node: %v", err)
	}
	return v
}

func SeedEntityEdge(tb testing.TB, ctx context.Context, tx *gorm.DB, sourceID, targetID uuid.UUID) *types.EntityEdge {
	tb.Helper()
	e := &types.EntityEdge{
		ID:             uuid.New(),
		SourceEntityID: sourceID,
		TargetEntityID: targetID,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed entity edge: %v", err)
	}
	return e
}

func SeedAttributeEdge(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.AttributeEdge {
	tb.Helper()
	a := &types.AttributeEdge{ID: uuid.New(), Name: name}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed attribute edge: %v", err)
	}
	return a
}

func SeedValueEdge(tb testing.TB, ctx context.Context, tx *gorm.DB, edgeID, attributeID uuid.UUID, value string) *types.ValueEdge {
	tb.Helper()
	v := &types.ValueEdge{
		ID:          uuid.New(),
		EdgeID:      edgeID,
		AttributeID: attributeID,
		Value:       value,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed value edge: %v", err)
	}
	return v
}
