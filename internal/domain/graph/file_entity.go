package graph

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FileEntity is the provenance record created once per upload. Every
// EntityNode produced from the upload references it, and per-file access
// grants hang off it. IngestStats holds the row/skip counters recorded
// after ingestion finishes.
type FileEntity struct {
	ID          int            `gorm:"primaryKey;autoIncrement" json:"id"`
	UploaderID  uuid.UUID      `gorm:"type:uuid;not null;index;column:uploader_id" json:"uploader_id"`
	CategoryID  int            `gorm:"not null;index;column:category_id" json:"category_id"`
	FileName    string         `gorm:"not null;column:file_name" json:"file_name"`
	UploadDate  time.Time      `gorm:"not null;column:upload_date" json:"upload_date"`
	IngestStats datatypes.JSON `gorm:"column:ingest_stats;type:jsonb" json:"ingest_stats,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

func (FileEntity) TableName() string { return "file_entity" }
