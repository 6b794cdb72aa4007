package graph

import "github.com/google/uuid"

// EntityNode is one row of an uploaded node CSV. Name holds the value of
// the designated unique-identifier column; FileID ties the node to the
// upload it came from.
type EntityNode struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"not null;index;column:name" json:"name"`
	FileID int       `gorm:"not null;index;column:file_id" json:"file_id"`

	File *FileEntity `gorm:"foreignKey:FileID;references:ID" json:"file,omitempty"`
}

func (EntityNode) TableName() string { return "entity_node" }
