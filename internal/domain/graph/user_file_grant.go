package graph

import "github.com/google/uuid"

// UserFileGrant gives a restricted-role user visibility into every node
// and edge derived from one uploaded file.
type UserFileGrant struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_user_file_grant_pair,unique,priority:1" json:"user_id"`
	FileID int       `gorm:"not null;index;index:idx_user_file_grant_pair,unique,priority:2" json:"file_id"`

	File *FileEntity `gorm:"foreignKey:FileID;references:ID" json:"file,omitempty"`
}

func (UserFileGrant) TableName() string { return "user_file_grant" }
