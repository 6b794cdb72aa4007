package graph

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// SearchMode selects the name predicate used by search queries.
type SearchMode string

const (
	SearchContains   SearchMode = "contains"
	SearchStartsWith SearchMode = "startswith"
	SearchEndsWith   SearchMode = "endswith"
)

// ParseSearchMode maps a raw query value to a mode; anything unrecognized
// falls back to contains.
func ParseSearchMode(raw string) SearchMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SearchStartsWith):
		return SearchStartsWith
	case string(SearchEndsWith):
		return SearchEndsWith
	default:
		return SearchContains
	}
}

func (m SearchMode) likePattern(text string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
	switch m {
	case SearchStartsWith:
		return escaped + "%"
	case SearchEndsWith:
		return "%" + escaped
	default:
		return "%" + escaped + "%"
	}
}

// AttributeValue is one attribute-name/value pair of a node or edge.
type AttributeValue struct {
	Attribute string
	Value     string
}

// GraphNodeRepo serves the role-scoped read path over entity nodes. The
// ForUser variants restrict results to files granted to the user.
type GraphNodeRepo interface {
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.EntityNode, error)
	ListByCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.EntityNode, error)
	ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EntityNode, error)
	ListForUserWithCategory(ctx context.Context, tx *gorm.DB, userID uuid.UUID, categoryID int) ([]*types.EntityNode, error)
	SearchAll(ctx context.Context, tx *gorm.DB, mode SearchMode, text string) ([]*types.EntityNode, error)
	SearchForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, mode SearchMode, text string) ([]*types.EntityNode, error)
	IsNodeVisibleToUser(ctx context.Context, tx *gorm.DB, userID, nodeID uuid.UUID) (bool, error)
	GetNodeAttributeValues(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) ([]AttributeValue, error)
}

type graphNodeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGraphNodeRepo(db *gorm.DB, baseLog *logger.Logger) GraphNodeRepo {
	return &graphNodeRepo{db: db, log: baseLog.With("repo", "GraphNodeRepo")}
}

func (r *graphNodeRepo) grantedFileIDs(tx *gorm.DB, userID uuid.UUID) *gorm.DB {
	return tx.Model(&types.UserFileGrant{}).
		Select("file_id").
		Where("user_id = ?", userID)
}

func (r *graphNodeRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphNodeRepo) ListByCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if err := transaction.WithContext(ctx).
		Joins("JOIN file_entity ON file_entity.id = entity_node.file_id").
		Where("file_entity.category_id = ?", categoryID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphNodeRepo) ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if err := transaction.WithContext(ctx).
		Where("file_id IN (?)", r.grantedFileIDs(transaction, userID)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphNodeRepo) ListForUserWithCategory(ctx context.Context, tx *gorm.DB, userID uuid.UUID, categoryID int) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if err := transaction.WithContext(ctx).
		Joins("JOIN file_entity ON file_entity.id = entity_node.file_id").
		Where("file_entity.category_id = ?", categoryID).
		Where("entity_node.file_id IN (?)", r.grantedFileIDs(transaction, userID)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphNodeRepo) SearchAll(ctx context.Context, tx *gorm.DB, mode SearchMode, text string) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if err := transaction.WithContext(ctx).
		Where("name LIKE ?", mode.likePattern(text)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphNodeRepo) SearchForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, mode SearchMode, text string) ([]*types.EntityNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EntityNode
	if err := transaction.WithContext(ctx).
		Where("name LIKE ?", mode.likePattern(text)).
		Where("file_id IN (?)", r.grantedFileIDs(transaction, userID)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *graphNodeRepo) IsNodeVisibleToUser(ctx context.Context, tx *gorm.DB, userID, nodeID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.EntityNode{}).
		Where("id = ?", nodeID).
		Where("file_id IN (?)", r.grantedFileIDs(transaction, userID)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *graphNodeRepo) GetNodeAttributeValues(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) ([]AttributeValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []AttributeValue
	if err := transaction.WithContext(ctx).
		Model(&types.ValueNode{}).
		Select("attribute_node.name AS attribute, value_node.value AS value").
		Joins("JOIN attribute_node ON attribute_node.id = value_node.attribute_id").
		Where("value_node.entity_id = ?", nodeID).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
