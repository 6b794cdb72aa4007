package graph

import "github.com/google/uuid"

// AttributeNode is one distinct CSV header seen during node ingestion.
// Names form their own namespace, separate from edge attributes.
type AttributeNode struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (AttributeNode) TableName() string { return "attribute_node" }
