package graph

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type FileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, file *types.FileEntity) error
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.FileEntity, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int) ([]*types.FileEntity, error)
	List(ctx context.Context, tx *gorm.DB, page, limit int) ([]*types.FileEntity, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	UpdateIngestStats(ctx context.Context, tx *gorm.DB, id int, stats []byte) error
	ListByUploader(ctx context.Context, tx *gorm.DB, uploaderID uuid.UUID) ([]*types.FileEntity, error)
}

type fileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFileRepo(db *gorm.DB, baseLog *logger.Logger) FileRepo {
	return &fileRepo{db: db, log: baseLog.With("repo", "FileRepo")}
}

func (r *fileRepo) Create(ctx context.Context, tx *gorm.DB, file *types.FileEntity) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(file).Error
}

func (r *fileRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.FileEntity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var file types.FileEntity
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&file).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int) ([]*types.FileEntity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.FileEntity
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", ids).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *fileRepo) List(ctx context.Context, tx *gorm.DB, page, limit int) ([]*types.FileEntity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.FileEntity
	if err := transaction.WithContext(ctx).
		Preload("Category").
		Order("id").
		Offset(page * limit).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *fileRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.FileEntity{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *fileRepo) UpdateIngestStats(ctx context.Context, tx *gorm.DB, id int, stats []byte) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.FileEntity{}).
		Where("id = ?", id).
		Update("ingest_stats", stats).Error
}

func (r *fileRepo) ListByUploader(ctx context.Context, tx *gorm.DB, uploaderID uuid.UUID) ([]*types.FileEntity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.FileEntity
	if err := transaction.WithContext(ctx).
		Where("uploader_id = ?", uploaderID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
