package graph

import "github.com/google/uuid"

// ValueNode is one EAV triple: a scalar value for (entity, attribute).
type ValueNode struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EntityID    uuid.UUID `gorm:"type:uuid;not null;index;column:entity_id" json:"entity_id"`
	AttributeID uuid.UUID `gorm:"type:uuid;not null;column:attribute_id" json:"attribute_id"`
	Value       string    `gorm:"column:value" json:"value"`

	Entity    *EntityNode    `gorm:"foreignKey:EntityID;references:ID" json:"entity,omitempty"`
	Attribute *AttributeNode `gorm:"foreignKey:AttributeID;references:ID" json:"attribute,omitempty"`
}

func (ValueNode) TableName() string { return "value_node" }
