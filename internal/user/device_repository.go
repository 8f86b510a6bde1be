package user

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type DeviceRepository interface {
	RegisterDevice(ctx context.Context, device *dbmysql.Device) error
	GetUserDevices(ctx context.Context, userID int64) ([]*dbmysql.Device, error)
	UpdateDeviceActivity(ctx context.Context, deviceToken string) error
	RemoveDevice(ctx context.Context, deviceToken string) error
	ActiveByUserID(ctx context.Context, userID int64) ([]*dbmysql.Device, error)
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) RegisterDevice(ctx context.Context, device *dbmysql.Device) error {
	// Save upserts on the token primary key so re-registration refreshes
	// the row instead of failing
	return r.db.WithContext(ctx).Save(device).Error
}

func (r *deviceRepository) GetUserDevices(ctx context.Context, userID int64) ([]*dbmysql.Device, error) {
	var devices []*dbmysql.Device
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_active DESC").
		Find(&devices).Error
	return devices, err
}

func (r *deviceRepository) UpdateDeviceActivity(ctx context.Context, deviceToken string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Device{}).
		Where("device_token = ?", deviceToken).
		Update("last_active", time.Now()).Error
}

func (r *deviceRepository) RemoveDevice(ctx context.Context, deviceToken string) error {
	return r.db.WithContext(ctx).
		Delete(&dbmysql.Device{}, "device_token = ?", deviceToken).Error
}

// ActiveByUserID returns devices seen in the last 30 days; stale tokens are
// skipped by the push sender.
func (r *deviceRepository) ActiveByUserID(ctx context.Context, userID int64) ([]*dbmysql.Device, error) {
	cutoff := time.Now().AddDate(0, 0, -30)

	var devices []*dbmysql.Device
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND last_active > ?", userID, cutoff).
		Order("last_active DESC").
		Find(&devices).Error
	return devices, err
}
