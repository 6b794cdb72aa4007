package graph

import "github.com/google/uuid"

// EntityEdge is a directed relationship between two existing EntityNodes.
// Edges whose endpoints did not resolve are never persisted.
type EntityEdge struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceEntityID uuid.UUID `gorm:"type:uuid;not null;index;column:source_entity_id" json:"source_entity_id"`
	TargetEntityID uuid.UUID `gorm:"type:uuid;not null;index;column:target_entity_id" json:"target_entity_id"`

	Source *EntityNode `gorm:"foreignKey:SourceEntityID;references:ID" json:"source,omitempty"`
	Target *EntityNode `gorm:"foreignKey:TargetEntityID;references:ID" json:"target,omitempty"`
}

func (EntityEdge) TableName() string { return "entity_edge" }
