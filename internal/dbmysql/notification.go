package dbmysql

import "time"

type Notification struct {
	NotificationID int64      `gorm:"primaryKey;autoIncrement" json:"notification_id"`
	UserID         int64      `gorm:"index;not null" json:"user_id"`
	ActorID        *int64     `gorm:"column:actor_id" json:"actor_id,omitempty"`
	ContentID      *int64     `gorm:"column:content_id" json:"content_id,omitempty"`
	Type           string     `gorm:"type:enum('like','comment','follow','system');not null" json:"type"`
	Body           string     `gorm:"type:text" json:"body"`
	Status         string     `gorm:"type:enum('sent','delivered','read');default:'sent'" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}
