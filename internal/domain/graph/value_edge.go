package graph

import "github.com/google/uuid"

// ValueEdge mirrors ValueNode for edges.
type ValueEdge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EdgeID      uuid.UUID `gorm:"type:uuid;not null;index;column:edge_id" json:"edge_id"`
	AttributeID uuid.UUID `gorm:"type:uuid;not null;column:attribute_id" json:"attribute_id"`
	Value       string    `gorm:"column:value" json:"value"`

	Edge      *EntityEdge    `gorm:"foreignKey:EdgeID;references:ID" json:"edge,omitempty"`
	Attribute *AttributeEdge `gorm:"foreignKey:AttributeID;references:ID" json:"attribute,omitempty"`
}

func (ValueEdge) TableName() string { return "value_edge" }
