package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// InteractionType classifies a user action on content. The feed recommender
// weighs these differently; see internal/feed.
type InteractionType string

const (
	InteractionLike    InteractionType = "LIKE"
	InteractionSave    InteractionType = "SAVE"
	InteractionShare   InteractionType = "SHARE"
	InteractionComment InteractionType = "COMMENT"
	InteractionView    InteractionType = "VIEW"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionLike, InteractionSave, InteractionShare, InteractionComment, InteractionView:
		return true
	}
	return false
}

// ContentInteraction holds per-content aggregate counters. One row is created
// with all counters at zero when the content is created. Counters are only
// mutated through atomic SQL expressions and must never go negative.
type ContentInteraction struct {
	ContentID    int64     `gorm:"primaryKey;column:content_id" json:"content_id"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount int64     `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	SaveCount    int64     `gorm:"column:save_count;not null;default:0" json:"save_count"`
	ShareCount   int64     `gorm:"column:share_count;not null;default:0" json:"share_count"`
	ViewCount    int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContentInteraction) TableName() string {
	return "content_interactions"
}

// UserContentInteraction is the append-only fact log read by the
// collaborative filter. One fact per (user, content, interaction type): the
// unique index keeps undo/redo cycles from recording the same signal twice,
// and rows are never deleted even when the user undoes a like or save.
type UserContentInteraction struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"column:user_id;not null;index:idx_fact_user_content_type,unique" json:"user_id"`
	ContentID       int64           `gorm:"column:content_id;not null;index:idx_fact_user_content_type,unique;index:idx_content" json:"content_id"`
	InteractionType InteractionType `gorm:"column:interaction_type;size:20;not null;index:idx_fact_user_content_type,unique" json:"interaction_type"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserContentInteraction) TableName() string {
	return "user_content_interactions"
}

// Like is the live per-user like state. Unlike removes the row outright so
// the unique index never blocks a later re-like; the interaction log keeps
// the historical signal.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_like_user_content,unique" json:"user_id"`
	ContentID int64     `gorm:"column:content_id;not null;index:idx_like_user_content,unique" json:"content_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Save is the live per-user save (bookmark) state. Removed outright on
// unsave, same as Like.
type Save struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_save_user_content,unique" json:"user_id"`
	ContentID int64     `gorm:"column:content_id;not null;index:idx_save_user_content,unique" json:"content_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Comment struct {
	CommentID int64          `gorm:"primaryKey;autoIncrement;column:comment_id" json:"comment_id"`
	UserID    int64          `gorm:"column:user_id;not null;index" json:"user_id"`
	ContentID int64          `gorm:"column:content_id;not null;index" json:"content_id"`
	Text      string         `gorm:"column:text;type:text;not null" json:"text"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}
