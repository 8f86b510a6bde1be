package feed

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// FeedRepository implements CandidateReader, InteractionReader and
// ContentHydrator over MySQL.
type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

const statColumns = `c.content_id, c.creator_id, m.language, c.created_at,
	ci.like_count, ci.comment_count, ci.save_count, ci.share_count, ci.view_count`

func (r *FeedRepository) blockedCreators(userID int64) *gorm.DB {
	// both directions: creators the user blocked and creators who blocked the user
	return r.db.Table("blocks").
		Select("CASE WHEN blocker_id = ? THEN blocked_id ELSE blocker_id END", userID).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID)
}

// --------- CANDIDATES ---------

func (r *FeedRepository) RecentFromFollowed(ctx context.Context, userID int64, limit int, category string) ([]ContentStat, error) {
	var stats []ContentStat
	q := r.db.WithContext(ctx).
		Table("contents c").
		Select(statColumns).
		Joins("JOIN content_metadata m ON m.content_id = c.content_id").
		Joins("JOIN content_interactions ci ON ci.content_id = c.content_id").
		Joins("JOIN follows f ON f.following_id = c.creator_id").
		Where("f.follower_id = ?", userID).
		Where("c.deleted_at IS NULL AND c.status = 'ACTIVE'").
		Where("c.creator_id NOT IN (?)", r.blockedCreators(userID)).
		Order("c.created_at DESC").
		Limit(limit)

	if category != "" {
		q = q.Where("m.category = ?", category)
	}

	err := q.Scan(&stats).Error
	return stats, err
}

func (r *FeedRepository) CandidatePool(ctx context.Context, userID int64, limit int, category string) ([]ContentStat, error) {
	var stats []ContentStat
	q := r.db.WithContext(ctx).
		Table("contents c").
		Select(statColumns).
		Joins("JOIN content_metadata m ON m.content_id = c.content_id").
		Joins("JOIN content_interactions ci ON ci.content_id = c.content_id").
		Where("c.deleted_at IS NULL AND c.status = 'ACTIVE'").
		Where("c.creator_id <> ?", userID).
		Where("c.creator_id NOT IN (?)", r.blockedCreators(userID)).
		Order("c.created_at DESC").
		Limit(limit)

	if category != "" {
		q = q.Where("m.category = ?", category)
	}

	err := q.Scan(&stats).Error
	return stats, err
}

// --------- INTERACTION LOG ---------

func (r *FeedRepository) InteractionsByUser(ctx context.Context, userID int64) ([]dbmysql.UserContentInteraction, error) {
	var interactions []dbmysql.UserContentInteraction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&interactions).Error
	return interactions, err
}

func (r *FeedRepository) UsersByContent(ctx context.Context, contentID int64, excludeUserID int64, limit int) ([]int64, error) {
	var userIDs []int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.UserContentInteraction{}).
		Distinct("user_id").
		Where("content_id = ? AND user_id <> ?", contentID, excludeUserID).
		Limit(limit).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (r *FeedRepository) InteractionsByUsers(ctx context.Context, userIDs []int64) ([]dbmysql.UserContentInteraction, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var interactions []dbmysql.UserContentInteraction
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&interactions).Error
	return interactions, err
}

// --------- HYDRATION ---------

func (r *FeedRepository) ContentsByIDs(ctx context.Context, ids []int64) ([]dbmysql.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var contents []dbmysql.Content
	err := r.db.WithContext(ctx).
		Preload("Metadata").
		Preload("Creator").
		Where("content_id IN ?", ids).
		Find(&contents).Error
	return contents, err
}

func (r *FeedRepository) CountersByContentIDs(ctx context.Context, ids []int64) ([]dbmysql.ContentInteraction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var counters []dbmysql.ContentInteraction
	err := r.db.WithContext(ctx).
		Where("content_id IN ?", ids).
		Find(&counters).Error
	return counters, err
}

func (r *FeedRepository) LikedContentIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error) {
	return r.flaggedContentIDs(ctx, &dbmysql.Like{}, userID, ids)
}

func (r *FeedRepository) SavedContentIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error) {
	return r.flaggedContentIDs(ctx, &dbmysql.Save{}, userID, ids)
}

func (r *FeedRepository) flaggedContentIDs(ctx context.Context, model interface{}, userID int64, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var contentIDs []int64
	err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND content_id IN ?", userID, ids).
		Pluck("content_id", &contentIDs).Error
	return contentIDs, err
}

func (r *FeedRepository) PreferredLanguage(ctx context.Context, userID int64) (string, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).
		Select("preferred_language").
		First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return user.PreferredLanguage, nil
}
