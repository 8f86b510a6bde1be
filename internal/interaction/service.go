package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

const maxCommentLength = 2000

// State reports the caller's like/save state after a mutation. Mutations are
// idempotent: repeating an action returns the current state unchanged.
type State struct {
	IsLiked bool `json:"is_liked"`
	IsSaved bool `json:"is_saved"`
}

type Usecase interface {
	Like(ctx context.Context, userID, contentID int64) (*State, error)
	Unlike(ctx context.Context, userID, contentID int64) (*State, error)
	SaveContent(ctx context.Context, userID, contentID int64) (*State, error)
	UnsaveContent(ctx context.Context, userID, contentID int64) (*State, error)
	Share(ctx context.Context, userID, contentID int64) error
	RecordView(ctx context.Context, userID, contentID int64) error
	AddComment(ctx context.Context, userID, contentID int64, text string) (*dbmysql.Comment, error)
	RemoveComment(ctx context.Context, userID, commentID int64) error
	ListComments(ctx context.Context, contentID int64, cursorToken string, limit int) ([]dbmysql.Comment, string, error)
}

type Service struct {
	repo Repository
	bus  Publisher
}

func NewService(repo Repository, bus Publisher) *Service {
	return &Service{repo: repo, bus: bus}
}

// creatorOf resolves the content's creator, mapping a missing row to
// ErrNotFound.
func (s *Service) creatorOf(ctx context.Context, contentID int64) (int64, error) {
	creatorID, err := s.repo.ContentCreator(ctx, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: content %d", common.ErrNotFound, contentID)
	}
	if err != nil {
		return 0, err
	}
	return creatorID, nil
}

func (s *Service) Like(ctx context.Context, userID, contentID int64) (*State, error) {
	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return nil, err
	}

	liked, err := s.repo.HasLike(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if liked {
		// already liked: no-op, client retry safe
		return s.currentState(ctx, userID, contentID)
	}

	if err := s.repo.CreateLike(ctx, userID, contentID); err != nil {
		return nil, err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionLike,
		Delta:     1,
	})
	return s.currentState(ctx, userID, contentID)
}

func (s *Service) Unlike(ctx context.Context, userID, contentID int64) (*State, error) {
	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return nil, err
	}

	liked, err := s.repo.HasLike(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return s.currentState(ctx, userID, contentID)
	}

	if err := s.repo.DeleteLike(ctx, userID, contentID); err != nil {
		return nil, err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionLike,
		Delta:     -1,
	})
	return s.currentState(ctx, userID, contentID)
}

func (s *Service) SaveContent(ctx context.Context, userID, contentID int64) (*State, error) {
	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.HasSave(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if saved {
		return s.currentState(ctx, userID, contentID)
	}

	if err := s.repo.CreateSave(ctx, userID, contentID); err != nil {
		return nil, err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionSave,
		Delta:     1,
	})
	return s.currentState(ctx, userID, contentID)
}

func (s *Service) UnsaveContent(ctx context.Context, userID, contentID int64) (*State, error) {
	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.HasSave(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if !saved {
		return s.currentState(ctx, userID, contentID)
	}

	if err := s.repo.DeleteSave(ctx, userID, contentID); err != nil {
		return nil, err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionSave,
		Delta:     -1,
	})
	return s.currentState(ctx, userID, contentID)
}

// Share records a share action. Shares have no undo and no per-user state
// row; each share counts.
func (s *Service) Share(ctx context.Context, userID, contentID int64) error {
	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionShare,
		Delta:     1,
	})
	return nil
}

func (s *Service) RecordView(ctx context.Context, userID, contentID int64) error {
	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionView,
		Delta:     1,
	})
	return nil
}

func (s *Service) AddComment(ctx context.Context, userID, contentID int64, text string) (*dbmysql.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is empty", common.ErrInvalidInput)
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", common.ErrInvalidInput, maxCommentLength)
	}

	creatorID, err := s.creatorOf(ctx, contentID)
	if err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{
		UserID:    userID,
		ContentID: contentID,
		Text:      text,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: contentID,
		CreatorID: creatorID,
		Type:      dbmysql.InteractionComment,
		Delta:     1,
	})
	return comment, nil
}

func (s *Service) RemoveComment(ctx context.Context, userID, commentID int64) error {
	comment, err := s.repo.CommentByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: comment %d", common.ErrNotFound, commentID)
	}
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return fmt.Errorf("%w: not the comment author", common.ErrForbidden)
	}

	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	s.bus.Publish(Event{
		UserID:    userID,
		ContentID: comment.ContentID,
		Type:      dbmysql.InteractionComment,
		Delta:     -1,
	})
	return nil
}

func (s *Service) ListComments(ctx context.Context, contentID int64, cursorToken string, limit int) ([]dbmysql.Comment, string, error) {
	cursor, err := common.DecodeCursor(cursorToken)
	if err != nil {
		return nil, "", err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	comments, err := s.repo.ListComments(ctx, contentID, cursor.LastID, limit)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(comments) == limit {
		nextCursor := &common.Cursor{LastID: comments[len(comments)-1].CommentID}
		next = nextCursor.Encode()
	}
	return comments, next, nil
}

func (s *Service) currentState(ctx context.Context, userID, contentID int64) (*State, error) {
	liked, err := s.repo.HasLike(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.HasSave(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	return &State{IsLiked: liked, IsSaved: saved}, nil
}
