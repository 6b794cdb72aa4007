package graph

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// UserFileGrantRepo owns the access-control edges. Grants are only ever
// created and destroyed here, through the access reconciler.
type UserFileGrantRepo interface {
	Grant(ctx context.Context, tx *gorm.DB, grants []*types.UserFileGrant) error
	// Revoke deletes the grant for exactly this (user, file) pair.
	Revoke(ctx context.Context, tx *gorm.DB, userID uuid.UUID, fileID int) error
	ListUserIDsForFile(ctx context.Context, tx *gorm.DB, fileID int) ([]uuid.UUID, error)
	ListFileIDsForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]int, error)
}

type userFileGrantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserFileGrantRepo(db *gorm.DB, baseLog *logger.Logger) UserFileGrantRepo {
	return &userFileGrantRepo{db: db, log: baseLog.With("repo", "UserFileGrantRepo")}
}

func (r *userFileGrantRepo) Grant(ctx context.Context, tx *gorm.DB, grants []*types.UserFileGrant) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(grants) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&grants).Error
}

func (r *userFileGrantRepo) Revoke(ctx context.Context, tx *gorm.DB, userID uuid.UUID, fileID int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND file_id = ?", userID, fileID).
		Delete(&types.UserFileGrant{}).Error
}

func (r *userFileGrantRepo) ListUserIDsForFile(ctx context.Context, tx *gorm.DB, fileID int) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.UserFileGrant{}).
		Where("file_id = ?", fileID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userFileGrantRepo) ListFileIDsForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []int
	if err := transaction.WithContext(ctx).
		Model(&types.UserFileGrant{}).
		Where("user_id = ?", userID).
		Pluck("file_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
