package userfile

import (
	"time"

	"github.com/google/uuid"
)

// UserFile records one uploaded document and where its original bytes live in
// the object store.
type UserFile struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Filename   string    `gorm:"type:text;not null" json:"filename"`
	FileType   string    `gorm:"type:text" json:"file_type"`
	Size       int64     `gorm:"not null;default:0" json:"size"`
	StorageKey string    `gorm:"type:text" json:"storage_key,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserFile) TableName() string {
	return "user_files"
}
