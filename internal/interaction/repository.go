package interaction

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// Repository is the persistence surface of the interaction service and the
// bus observers.
type Repository interface {
	ContentCreator(ctx context.Context, contentID int64) (int64, error)

	HasLike(ctx context.Context, userID, contentID int64) (bool, error)
	CreateLike(ctx context.Context, userID, contentID int64) error
	DeleteLike(ctx context.Context, userID, contentID int64) error

	HasSave(ctx context.Context, userID, contentID int64) (bool, error)
	CreateSave(ctx context.Context, userID, contentID int64) error
	DeleteSave(ctx context.Context, userID, contentID int64) error

	CreateComment(ctx context.Context, comment *dbmysql.Comment) error
	CommentByID(ctx context.Context, commentID int64) (*dbmysql.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ListComments(ctx context.Context, contentID, afterID int64, limit int) ([]dbmysql.Comment, error)

	// AdjustCounter applies an atomic delta to one counter column.
	// Decrements are guarded in SQL so counters never go negative.
	AdjustCounter(ctx context.Context, contentID int64, interactionType dbmysql.InteractionType, delta int) error

	// AppendHistory inserts into the append-only interaction log. The log
	// holds one fact per (user, content, interaction type); re-recording an
	// existing fact is a no-op.
	AppendHistory(ctx context.Context, record *dbmysql.UserContentInteraction) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ContentCreator(ctx context.Context, contentID int64) (int64, error) {
	var content dbmysql.Content
	err := r.db.WithContext(ctx).
		Select("creator_id").
		First(&content, "content_id = ?", contentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, gorm.ErrRecordNotFound
	}
	return content.CreatorID, err
}

// --------- LIKES ---------

func (r *repository) HasLike(ctx context.Context, userID, contentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateLike(ctx context.Context, userID, contentID int64) error {
	return r.db.WithContext(ctx).Create(&dbmysql.Like{UserID: userID, ContentID: contentID}).Error
}

func (r *repository) DeleteLike(ctx context.Context, userID, contentID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&dbmysql.Like{}).Error
}

// --------- SAVES ---------

func (r *repository) HasSave(ctx context.Context, userID, contentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Save{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateSave(ctx context.Context, userID, contentID int64) error {
	return r.db.WithContext(ctx).Create(&dbmysql.Save{UserID: userID, ContentID: contentID}).Error
}

func (r *repository) DeleteSave(ctx context.Context, userID, contentID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&dbmysql.Save{}).Error
}

// --------- COMMENTS ---------

func (r *repository) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *repository) CommentByID(ctx context.Context, commentID int64) (*dbmysql.Comment, error) {
	var comment dbmysql.Comment
	err := r.db.WithContext(ctx).First(&comment, "comment_id = ?", commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *repository) DeleteComment(ctx context.Context, commentID int64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Comment{}, "comment_id = ?", commentID).Error
}

func (r *repository) ListComments(ctx context.Context, contentID, afterID int64, limit int) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("content_id = ?", contentID).
		Order("comment_id DESC").
		Limit(limit)
	if afterID > 0 {
		q = q.Where("comment_id < ?", afterID)
	}
	err := q.Find(&comments).Error
	return comments, err
}

// --------- COUNTERS & HISTORY ---------

var counterColumns = map[dbmysql.InteractionType]string{
	dbmysql.InteractionLike:    "like_count",
	dbmysql.InteractionSave:    "save_count",
	dbmysql.InteractionShare:   "share_count",
	dbmysql.InteractionComment: "comment_count",
	dbmysql.InteractionView:    "view_count",
}

func (r *repository) AdjustCounter(ctx context.Context, contentID int64, interactionType dbmysql.InteractionType, delta int) error {
	column, ok := counterColumns[interactionType]
	if !ok {
		return fmt.Errorf("no counter column for interaction type %q", interactionType)
	}

	q := r.db.WithContext(ctx).
		Model(&dbmysql.ContentInteraction{}).
		Where("content_id = ?", contentID)
	if delta < 0 {
		// the guard keeps the counter from going negative even under
		// concurrent decrements
		q = q.Where(column+" >= ?", -delta)
	}

	return q.UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

func (r *repository) AppendHistory(ctx context.Context, record *dbmysql.UserContentInteraction) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
}
