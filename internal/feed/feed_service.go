package feed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type FeedUsecase interface {
	GetFeed(ctx context.Context, userID int64, cursorToken, category, language string) (*FeedPage, error)
	Recommend(ctx context.Context, userID int64, limit int) ([]int64, error)
}

// ContentHydrator is the batched lookup surface used to turn the composed id
// list into full feed items.
type ContentHydrator interface {
	ContentsByIDs(ctx context.Context, ids []int64) ([]dbmysql.Content, error)
	CountersByContentIDs(ctx context.Context, ids []int64) ([]dbmysql.ContentInteraction, error)
	LikedContentIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error)
	SavedContentIDs(ctx context.Context, userID int64, ids []int64) ([]int64, error)
	PreferredLanguage(ctx context.Context, userID int64) (string, error)
}

type FeedService struct {
	composer    *Composer
	recommender *Recommender
	hydrator    ContentHydrator
	logger      zerolog.Logger
}

func NewFeedService(composer *Composer, recommender *Recommender, hydrator ContentHydrator, logger zerolog.Logger) *FeedService {
	return &FeedService{
		composer:    composer,
		recommender: recommender,
		hydrator:    hydrator,
		logger:      logger.With().Str("component", "feed_service").Logger(),
	}
}

// GetFeed composes and hydrates one feed page. The language parameter
// overrides the user's stored preference when set; category narrows every
// candidate source.
func (s *FeedService) GetFeed(ctx context.Context, userID int64, cursorToken, category, language string) (*FeedPage, error) {
	cursor, err := common.DecodeCursor(cursorToken)
	if err != nil {
		return nil, err
	}

	if language == "" {
		language, err = s.hydrator.PreferredLanguage(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load language preference: %w", err)
		}
	}

	exclude := make(map[int64]struct{}, len(cursor.Seen))
	for _, id := range cursor.Seen {
		exclude[id] = struct{}{}
	}

	ids := s.composer.Compose(ctx, CandidateQuery{
		UserID:   userID,
		Exclude:  exclude,
		Category: category,
		Language: language,
	})

	items, err := s.hydrate(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	page := &FeedPage{Items: items}
	if len(ids) > 0 {
		cursor.Merge(ids)
		page.NextCursor = cursor.Encode()
	}
	return page, nil
}

// Recommend exposes the collaborative filter directly ("because you liked"
// style rails on the client).
func (s *FeedService) Recommend(ctx context.Context, userID int64, limit int) ([]int64, error) {
	return s.recommender.Recommend(ctx, userID, limit)
}

// hydrate batch-loads content, metadata, counters and per-user flags for the
// composed ids, preserving their order. Content deleted between composition
// and hydration is silently dropped.
func (s *FeedService) hydrate(ctx context.Context, userID int64, ids []int64) ([]FeedItem, error) {
	if len(ids) == 0 {
		return []FeedItem{}, nil
	}

	contents, err := common.BatchLoad(ctx, ids, s.hydrator.ContentsByIDs,
		func(c dbmysql.Content) int64 { return c.ContentID })
	if err != nil {
		return nil, fmt.Errorf("hydrate contents: %w", err)
	}

	counters, err := common.BatchLoad(ctx, ids, s.hydrator.CountersByContentIDs,
		func(ci dbmysql.ContentInteraction) int64 { return ci.ContentID })
	if err != nil {
		return nil, fmt.Errorf("hydrate counters: %w", err)
	}

	liked, err := s.hydrator.LikedContentIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate likes: %w", err)
	}
	saved, err := s.hydrator.SavedContentIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate saves: %w", err)
	}

	likedSet := make(map[int64]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}
	savedSet := make(map[int64]struct{}, len(saved))
	for _, id := range saved {
		savedSet[id] = struct{}{}
	}

	items := make([]FeedItem, 0, len(ids))
	for _, id := range ids {
		content, ok := contents[id]
		if !ok {
			continue
		}
		item := FeedItem{
			Content:  content,
			Metadata: content.Metadata,
		}
		if ci, ok := counters[id]; ok {
			item.Interactions = ci
		} else {
			item.Interactions = dbmysql.ContentInteraction{ContentID: id}
		}
		_, item.IsLiked = likedSet[id]
		_, item.IsSaved = savedSet[id]
		items = append(items, item)
	}
	return items, nil
}
