package graph

import "github.com/google/uuid"

// AttributeEdge is one distinct CSV header seen during edge ingestion.
type AttributeEdge struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (AttributeEdge) TableName() string { return "attribute_edge" }
