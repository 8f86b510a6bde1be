package notif

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/config"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// NewFCMClient builds the Firebase messaging client. Returns nil when push
// is disabled in config; callers must treat a nil client as "no push".
func NewFCMClient(ctx context.Context, cfg *config.Config) (*messaging.Client, error) {
	if !cfg.Firebase.Enabled {
		return nil, nil
	}

	opts := []option.ClientOption{}
	if cfg.Firebase.CredentialsFilePath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFilePath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}
	return client, nil
}

type Page struct {
	Notifications []*dbmysql.Notification `json:"notifications"`
	NextCursor    string                  `json:"next_cursor,omitempty"`
}

type Usecase interface {
	List(ctx context.Context, userID int64, cursorToken string, limit int) (*Page, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type Service struct {
	repo dbmysql.NotificationRepository
}

func NewService(repo dbmysql.NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID int64, cursorToken string, limit int) (*Page, error) {
	cursor, err := common.DecodeCursor(cursorToken)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	notifications, err := s.repo.ByUserID(ctx, userID, cursor.LastID, limit)
	if err != nil {
		return nil, err
	}

	next := ""
	if len(notifications) == limit {
		nextCursor := &common.Cursor{LastID: notifications[len(notifications)-1].NotificationID}
		next = nextCursor.Encode()
	}
	return &Page{Notifications: notifications, NextCursor: next}, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID int64) error {
	err := s.repo.MarkAsRead(ctx, notificationID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: notification %d", common.ErrNotFound, notificationID)
	}
	return err
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
