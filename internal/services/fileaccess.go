package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	userrepos "github.com/analysisdata/graph-backend/internal/data/repos/user"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

const userSearchLimit = 10

// FilePage is one page of upload records.
type FilePage struct {
	Files []*types.FileEntity `json:"files"`
	Total int                 `json:"total"`
}

// FileAccessService manages who can see which uploaded file. Listing is
// role-scoped like the graph reads: restricted callers only see files
// they hold grants on.
type FileAccessService interface {
	ListFiles(ctx context.Context, page, limit int) (*FilePage, error)
	// ListMyUploads returns every file the calling user uploaded.
	ListMyUploads(ctx context.Context) ([]*types.FileEntity, error)
	WhoHasAccess(ctx context.Context, fileID int) ([]*types.User, error)
	SearchUsersForAccess(ctx context.Context, usernamePrefix string) ([]*types.User, error)
	// ReconcileAccess makes the file's grant set equal the desired user
	// set: missing grants are created, surplus grants are revoked, and
	// grants on other files are never touched.
	ReconcileAccess(ctx context.Context, fileID int, desiredUserIDs []uuid.UUID) error
}

type fileAccessService struct {
	db        *gorm.DB
	log       *logger.Logger
	fileRepo  graphrepos.FileRepo
	grantRepo graphrepos.UserFileGrantRepo
	userRepo  userrepos.UserRepo
}

func NewFileAccessService(
	db *gorm.DB,
	log *logger.Logger,
	fileRepo graphrepos.FileRepo,
	grantRepo graphrepos.UserFileGrantRepo,
	userRepo userrepos.UserRepo,
) FileAccessService {
	return &fileAccessService{
		db:        db,
		log:       log.With("service", "FileAccessService"),
		fileRepo:  fileRepo,
		grantRepo: grantRepo,
		userRepo:  userRepo,
	}
}

func (fa *fileAccessService) ListFiles(ctx context.Context, page, limit int) (*FilePage, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd != nil && rd.Role == types.RoleDataAnalyst {
		fileIDs, err := fa.grantRepo.ListFileIDsForUser(ctx, nil, rd.UserID)
		if err != nil {
			return nil, err
		}
		files, err := fa.fileRepo.GetByIDs(ctx, nil, fileIDs)
		if err != nil {
			return nil, err
		}
		return &FilePage{Files: paginateFiles(files, page, limit), Total: len(files)}, nil
	}

	files, err := fa.fileRepo.List(ctx, nil, page, limit)
	if err != nil {
		return nil, err
	}
	total, err := fa.fileRepo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &FilePage{Files: files, Total: int(total)}, nil
}

func (fa *fileAccessService) ListMyUploads(ctx context.Context) ([]*types.FileEntity, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, errors.ErrUnauthorized
	}
	files, err := fa.fileRepo.ListByUploader(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []*types.FileEntity{}
	}
	return files, nil
}

func (fa *fileAccessService) WhoHasAccess(ctx context.Context, fileID int) ([]*types.User, error) {
	file, err := fa.fileRepo.GetByID(ctx, nil, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, errors.ErrFileNotFound
	}

	userIDs, err := fa.grantRepo.ListUserIDsForFile(ctx, nil, fileID)
	if err != nil {
		return nil, err
	}
	users, err := fa.userRepo.GetByIDs(ctx, nil, userIDs)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*types.User{}
	}
	return users, nil
}

func (fa *fileAccessService) SearchUsersForAccess(ctx context.Context, usernamePrefix string) ([]*types.User, error) {
	users, err := fa.userRepo.SearchByUsernamePrefix(ctx, nil, usernamePrefix, userSearchLimit)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errors.ErrUserNotFound
	}
	return users, nil
}

func (fa *fileAccessService) ReconcileAccess(ctx context.Context, fileID int, desiredUserIDs []uuid.UUID) error {
	file, err := fa.fileRepo.GetByID(ctx, nil, fileID)
	if err != nil {
		return err
	}
	if file == nil {
		return errors.ErrFileNotFound
	}

	desired := make(map[uuid.UUID]bool, len(desiredUserIDs))
	for _, id := range desiredUserIDs {
		desired[id] = true
	}

	if len(desiredUserIDs) > 0 {
		found, err := fa.userRepo.GetByIDs(ctx, nil, desiredUserIDs)
		if err != nil {
			return err
		}
		if len(found) != len(desired) {
			return errors.ErrUserNotFound
		}
	}

	return fa.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentIDs, err := fa.grantRepo.ListUserIDsForFile(ctx, tx, fileID)
		if err != nil {
			return err
		}

		toGrant, toRevoke := diffGrants(currentIDs, desiredUserIDs)

		grants := make([]*types.UserFileGrant, len(toGrant))
		for i, id := range toGrant {
			grants[i] = &types.UserFileGrant{
				ID:     uuid.New(),
				UserID: id,
				FileID: fileID,
			}
		}
		if err := fa.grantRepo.Grant(ctx, tx, grants); err != nil {
			return fmt.Errorf("grant access: %w", err)
		}

		for _, id := range toRevoke {
			if err := fa.grantRepo.Revoke(ctx, tx, id, fileID); err != nil {
				return fmt.Errorf("revoke access: %w", err)
			}
		}
		return nil
	})
}

// diffGrants computes the set difference both ways: users to grant are in
// desired but not current, users to revoke are in current but not desired.
// Order follows the input slices; duplicates collapse.
func diffGrants(current, desired []uuid.UUID) (toGrant, toRevoke []uuid.UUID) {
	currentSet := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[uuid.UUID]bool, len(desired))
	for _, id := range desired {
		if desiredSet[id] {
			continue
		}
		desiredSet[id] = true
		if !currentSet[id] {
			toGrant = append(toGrant, id)
		}
	}
	seen := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !desiredSet[id] {
			toRevoke = append(toRevoke, id)
		}
	}
	return toGrant, toRevoke
}

func paginateFiles(files []*types.FileEntity, page, limit int) []*types.FileEntity {
	if limit <= 0 {
		return []*types.FileEntity{}
	}
	start := page * limit
	if start < 0 || start >= len(files) {
		return []*types.FileEntity{}
	}
	end := start + limit
	if end > len(files) {
		end = len(files)
	}
	return files[start:end]
}
