package dbmysql

import (
	"time"
)

type Device struct {
	DeviceToken  string    `gorm:"primaryKey;size:255"`
	UserID       int64     `gorm:"not null;index"`
	Platform     string    `gorm:"not null;size:10"`
	RegisteredAt time.Time `gorm:"autoCreateTime"`
	LastActive   time.Time `gorm:"autoCreateTime"`
}

func (Device) TableName() string {
	return "devices"
}
