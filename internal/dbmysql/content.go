package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type Content struct {
	ContentID  int64          `gorm:"primaryKey;autoIncrement;column:content_id" json:"content_id"`
	CreatorID  int64          `gorm:"column:creator_id;not null;index" json:"creator_id"`
	Type       string         `gorm:"type:ENUM('VIDEO','PHOTO','QUIZ');column:type;not null" json:"type"`
	MediaFile  string         `gorm:"column:media_file;size:24" json:"media_file"` // GridFS ObjectID hex
	ThumbFile  *string        `gorm:"column:thumb_file;size:24" json:"thumb_file,omitempty"`
	Status     string         `gorm:"type:ENUM('ACTIVE','HIDDEN');column:status;default:'ACTIVE'" json:"status"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Creator  *User            `gorm:"foreignKey:CreatorID;references:UserID" json:"creator,omitempty"`
	Metadata *ContentMetadata `gorm:"foreignKey:ContentID;references:ContentID" json:"metadata,omitempty"`
}

// ContentMetadata is 1:1 with Content.
type ContentMetadata struct {
	ContentID   int64     `gorm:"primaryKey;column:content_id" json:"content_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;size:50;index" json:"category"`
	Tags        string    `gorm:"column:tags;size:500" json:"tags"` // comma-joined
	Language    string    `gorm:"column:language;size:10;index" json:"language"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContentMetadata) TableName() string {
	return "content_metadata"
}

// Content categories exposed to the client. Kept as strings rather than a DB
// enum so new categories do not require a migration.
var ContentCategories = []string{
	"EDUCATION", "SCIENCE", "TECHNOLOGY", "MATH", "LANGUAGE",
	"HISTORY", "GEOGRAPHY", "ART", "MUSIC", "LITERATURE",
	"HEALTH", "FITNESS", "COOKING", "FINANCE", "BUSINESS",
	"CODING", "DIY", "NATURE", "TRAVEL", "OTHER",
}

func IsValidCategory(category string) bool {
	for _, c := range ContentCategories {
		if c == category {
			return true
		}
	}
	return false
}
