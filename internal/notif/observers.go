// Package notif turns interaction events into stored notifications and FCM
// pushes for the content creator.
package notif

import (
	"context"
	"fmt"
	"strconv"

	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
	"github.com/12OneTwo12/upvy-sub004/internal/interaction"
)

// HandleReader resolves an actor's display handle for notification bodies.
type HandleReader interface {
	GetUserByID(ctx context.Context, userID int64) (*dbmysql.User, error)
}

// DeviceReader lists push targets, satisfied by user.DeviceRepository.
type DeviceReader interface {
	ActiveByUserID(ctx context.Context, userID int64) ([]*dbmysql.Device, error)
	RemoveDevice(ctx context.Context, deviceToken string) error
}

// MulticastSender is the slice of the FCM client the push observer uses.
type MulticastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// notifiedTypes maps interaction types to notification rows. Views, saves
// and shares stay silent; they would drown creators in noise.
var notifiedTypes = map[dbmysql.InteractionType]string{
	dbmysql.InteractionLike:    "like",
	dbmysql.InteractionComment: "comment",
}

// DatabaseObserver persists a notification row for the content creator on
// each like and comment.
type DatabaseObserver struct {
	repo    dbmysql.NotificationRepository
	handles HandleReader
}

func NewDatabaseObserver(repo dbmysql.NotificationRepository, handles HandleReader) *DatabaseObserver {
	return &DatabaseObserver{repo: repo, handles: handles}
}

func (o *DatabaseObserver) Name() string {
	return "notification_db_observer"
}

func (o *DatabaseObserver) Update(event interaction.Event) error {
	notifType, ok := notifiedTypes[event.Type]
	if !ok || event.Delta <= 0 {
		return nil
	}
	// never notify about your own activity
	if event.UserID == event.CreatorID {
		return nil
	}

	ctx := context.Background()
	body := notificationBody(ctx, o.handles, event.UserID, notifType)

	actorID := event.UserID
	contentID := event.ContentID
	notification := &dbmysql.Notification{
		UserID:    event.CreatorID,
		ActorID:   &actorID,
		ContentID: &contentID,
		Type:      notifType,
		Body:      body,
		Status:    "sent",
	}
	if err := o.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	return nil
}

func notificationBody(ctx context.Context, handles HandleReader, actorID int64, notifType string) string {
	actor := "Someone"
	if user, err := handles.GetUserByID(ctx, actorID); err == nil {
		actor = "@" + user.Handle
	}

	switch notifType {
	case "like":
		return fmt.Sprintf("%s liked your content", actor)
	case "comment":
		return fmt.Sprintf("%s commented on your content", actor)
	default:
		return fmt.Sprintf("%s interacted with your content", actor)
	}
}

// PushObserver fans the same events out to the creator's active devices via
// FCM.
type PushObserver struct {
	sender  MulticastSender
	devices DeviceReader
	handles HandleReader
	logger  zerolog.Logger
}

func NewPushObserver(sender MulticastSender, devices DeviceReader, handles HandleReader, logger zerolog.Logger) *PushObserver {
	return &PushObserver{
		sender:  sender,
		devices: devices,
		handles: handles,
		logger:  logger.With().Str("component", "push_observer").Logger(),
	}
}

func (o *PushObserver) Name() string {
	return "notification_push_observer"
}

func (o *PushObserver) Update(event interaction.Event) error {
	notifType, ok := notifiedTypes[event.Type]
	if !ok || event.Delta <= 0 {
		return nil
	}
	if event.UserID == event.CreatorID {
		return nil
	}

	ctx := context.Background()
	devices, err := o.devices.ActiveByUserID(ctx, event.CreatorID)
	if err != nil {
		return fmt.Errorf("load devices: %w", err)
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, len(devices))
	for i, device := range devices {
		tokens[i] = device.DeviceToken
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: "Upvy",
			Body:  notificationBody(ctx, o.handles, event.UserID, notifType),
		},
		Data: map[string]string{
			"type":       notifType,
			"content_id": strconv.FormatInt(event.ContentID, 10),
			"actor_id":   strconv.FormatInt(event.UserID, 10),
		},
		Tokens: tokens,
	}

	response, err := o.sender.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}

	o.pruneDeadTokens(ctx, response, tokens)

	o.logger.Debug().
		Int("success", response.SuccessCount).
		Int("failure", response.FailureCount).
		Int64("user_id", event.CreatorID).
		Msg("push sent")
	return nil
}

// pruneDeadTokens drops tokens FCM reports as unregistered so they are not
// retried forever.
func (o *PushObserver) pruneDeadTokens(ctx context.Context, response *messaging.BatchResponse, tokens []string) {
	for i, result := range response.Responses {
		if result.Success || i >= len(tokens) {
			continue
		}
		if messaging.IsRegistrationTokenNotRegistered(result.Error) {
			if err := o.devices.RemoveDevice(ctx, tokens[i]); err != nil {
				o.logger.Warn().Err(err).Msg("failed to remove dead token")
			}
		}
	}
}
