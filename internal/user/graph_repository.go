package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// GraphRepository persists the directed follow and block edges.
type GraphRepository interface {
	CreateFollow(ctx context.Context, followerID, followingID int64) error
	DeleteFollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	ListFollowing(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error)
	ListFollowers(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error)

	CreateBlock(ctx context.Context, blockerID, blockedID int64) error
	DeleteBlock(ctx context.Context, blockerID, blockedID int64) error
	// BlockExists reports a block in either direction between the two users.
	BlockExists(ctx context.Context, userA, userB int64) (bool, error)
	// DeleteFollowsBetween drops both follow edges; called when a block is
	// created.
	DeleteFollowsBetween(ctx context.Context, userA, userB int64) error
}

type graphRepository struct {
	db *gorm.DB
}

func NewGraphRepository(db *gorm.DB) GraphRepository {
	return &graphRepository{db: db}
}

func (r *graphRepository) CreateFollow(ctx context.Context, followerID, followingID int64) error {
	follow := &dbmysql.Follow{FollowerID: followerID, FollowingID: followingID}
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *graphRepository) DeleteFollow(ctx context.Context, followerID, followingID int64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&dbmysql.Follow{}).Error
}

func (r *graphRepository) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *graphRepository) ListFollowing(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error) {
	return r.edgeUsers(ctx, "follows.follower_id = ?", "follows.following_id = users.user_id", userID, afterID, limit)
}

func (r *graphRepository) ListFollowers(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error) {
	return r.edgeUsers(ctx, "follows.following_id = ?", "follows.follower_id = users.user_id", userID, afterID, limit)
}

func (r *graphRepository) edgeUsers(ctx context.Context, whoClause, joinClause string, userID, afterID int64, limit int) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	q := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Joins("JOIN follows ON "+joinClause).
		Where(whoClause, userID).
		Where("users.status = ?", "active")
	if afterID > 0 {
		q = q.Where("follows.id < ?", afterID)
	}
	err := q.Order("follows.id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *graphRepository) CreateBlock(ctx context.Context, blockerID, blockedID int64) error {
	block := &dbmysql.Block{BlockerID: blockerID, BlockedID: blockedID}
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *graphRepository) DeleteBlock(ctx context.Context, blockerID, blockedID int64) error {
	return r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&dbmysql.Block{}).Error
}

func (r *graphRepository) BlockExists(ctx context.Context, userA, userB int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *graphRepository) DeleteFollowsBetween(ctx context.Context, userA, userB int64) error {
	return r.db.WithContext(ctx).
		Where("(follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?)",
			userA, userB, userB, userA).
		Delete(&dbmysql.Follow{}).Error
}
