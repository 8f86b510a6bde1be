package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type UserService interface {
	RegisterUser(ctx context.Context, handle, email, password, preferredLanguage string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID int64, email, bio, preferredLanguage string) error

	Follow(ctx context.Context, userID, targetID int64) error
	Unfollow(ctx context.Context, userID, targetID int64) error
	ListFollowing(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error)
	ListFollowers(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error)

	Block(ctx context.Context, userID, targetID int64) error
	Unblock(ctx context.Context, userID, targetID int64) error

	RegisterDevice(ctx context.Context, userID int64, token, platform string) error
	RemoveDevice(ctx context.Context, token string) error
	GetUserDevices(ctx context.Context, userID int64) ([]*dbmysql.Device, error)
	TouchDevice(ctx context.Context, token string) error
}

type userService struct {
	userRepo   UserRepository
	graphRepo  GraphRepository
	deviceRepo DeviceRepository
}

func NewUserService(userRepo UserRepository, graphRepo GraphRepository, deviceRepo DeviceRepository) UserService {
	return &userService{userRepo: userRepo, graphRepo: graphRepo, deviceRepo: deviceRepo}
}

func (s *userService) RegisterUser(ctx context.Context, handle, email, password, preferredLanguage string) (*dbmysql.User, string, error) {
	if err := common.ValidateHandle(handle); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if err := common.ValidateLanguage(preferredLanguage); err != nil {
		return nil, "", fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}

	exists, err := s.userRepo.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("%w: handle already taken", common.ErrInvalidInput)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Handle:            handle,
		Email:             email,
		PasswordHash:      hashed,
		PreferredLanguage: preferredLanguage,
		Status:            "active",
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error) {
	if handle == "" || password == "" {
		return nil, "", fmt.Errorf("%w: handle and password required", common.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: invalid handle or password", common.ErrUnauthorized)
	}
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("%w: invalid handle or password", common.ErrUnauthorized)
	}

	token, err := common.GenerateToken(user.UserID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, userID)
	}
	return user, err
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, email, bio, preferredLanguage string) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if email != "" {
		if err := common.ValidateEmail(email); err != nil {
			return fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
		}
		user.Email = email
	}
	if bio != "" {
		user.Bio = bio
	}
	if preferredLanguage != "" {
		if err := common.ValidateLanguage(preferredLanguage); err != nil {
			return fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
		}
		user.PreferredLanguage = preferredLanguage
	}

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userService) Follow(ctx context.Context, userID, targetID int64) error {
	if userID == targetID {
		return fmt.Errorf("%w: cannot follow yourself", common.ErrInvalidInput)
	}

	if _, err := s.GetProfile(ctx, targetID); err != nil {
		return err
	}

	blocked, err := s.graphRepo.BlockExists(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if blocked {
		return fmt.Errorf("%w: cannot follow this user", common.ErrForbidden)
	}

	following, err := s.graphRepo.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if following {
		// already following, retry safe
		return nil
	}

	return s.graphRepo.CreateFollow(ctx, userID, targetID)
}

func (s *userService) Unfollow(ctx context.Context, userID, targetID int64) error {
	return s.graphRepo.DeleteFollow(ctx, userID, targetID)
}

func (s *userService) ListFollowing(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.graphRepo.ListFollowing(ctx, userID, afterID, limit)
}

func (s *userService) ListFollowers(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.graphRepo.ListFollowers(ctx, userID, afterID, limit)
}

// Block creates the block edge and severs any follow relationship in both
// directions.
func (s *userService) Block(ctx context.Context, userID, targetID int64) error {
	if userID == targetID {
		return fmt.Errorf("%w: cannot block yourself", common.ErrInvalidInput)
	}

	if _, err := s.GetProfile(ctx, targetID); err != nil {
		return err
	}

	blocked, err := s.graphRepo.BlockExists(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if blocked {
		return nil
	}

	if err := s.graphRepo.CreateBlock(ctx, userID, targetID); err != nil {
		return err
	}
	return s.graphRepo.DeleteFollowsBetween(ctx, userID, targetID)
}

func (s *userService) Unblock(ctx context.Context, userID, targetID int64) error {
	return s.graphRepo.DeleteBlock(ctx, userID, targetID)
}

func (s *userService) RegisterDevice(ctx context.Context, userID int64, token, platform string) error {
	if token == "" {
		return fmt.Errorf("%w: device token required", common.ErrInvalidInput)
	}
	if platform != "android" && platform != "ios" && platform != "web" {
		return fmt.Errorf("%w: invalid platform %q", common.ErrInvalidInput, platform)
	}

	device := &dbmysql.Device{
		DeviceToken:  token,
		UserID:       userID,
		Platform:     platform,
		RegisteredAt: time.Now(),
		LastActive:   time.Now(),
	}
	return s.deviceRepo.RegisterDevice(ctx, device)
}

func (s *userService) RemoveDevice(ctx context.Context, token string) error {
	return s.deviceRepo.RemoveDevice(ctx, token)
}

func (s *userService) GetUserDevices(ctx context.Context, userID int64) ([]*dbmysql.Device, error) {
	return s.deviceRepo.GetUserDevices(ctx, userID)
}

func (s *userService) TouchDevice(ctx context.Context, token string) error {
	return s.deviceRepo.UpdateDeviceActivity(ctx, token)
}
