package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// Collaborative-filter weights per interaction type. COMMENT and VIEW carry
// no recommendation signal and contribute nothing.
var cfWeights = map[dbmysql.InteractionType]float64{
	dbmysql.InteractionLike:  1.0,
	dbmysql.InteractionSave:  1.5,
	dbmysql.InteractionShare: 2.0,
}

// defaultNeighborFanOut bounds neighbor discovery per interacted content.
const defaultNeighborFanOut = 50

// InteractionReader is the query surface of the collaborative filter over
// the append-only user_content_interactions log.
type InteractionReader interface {
	// InteractionsByUser returns the user's full interaction set.
	InteractionsByUser(ctx context.Context, userID int64) ([]dbmysql.UserContentInteraction, error)

	// UsersByContent returns up to limit distinct user ids that interacted
	// with the content, excluding the given user.
	UsersByContent(ctx context.Context, contentID int64, excludeUserID int64, limit int) ([]int64, error)

	// InteractionsByUsers returns the combined interaction sets of the given
	// users in one batched query.
	InteractionsByUsers(ctx context.Context, userIDs []int64) ([]dbmysql.UserContentInteraction, error)
}

// Recommender is a user-overlap collaborative filter: users who interacted
// with the same content as the requester are neighbors, and their other
// interactions are aggregated into weighted candidate scores.
type Recommender struct {
	repo   InteractionReader
	fanOut int
}

func NewRecommender(repo InteractionReader, neighborFanOut int) *Recommender {
	if neighborFanOut <= 0 {
		neighborFanOut = defaultNeighborFanOut
	}
	return &Recommender{repo: repo, fanOut: neighborFanOut}
}

// Recommend returns up to limit content ids the user has not interacted
// with, ranked by aggregated neighbor-interaction weight. A user with no
// interaction history, or with no discoverable neighbors, gets an empty list
// and no error.
func (r *Recommender) Recommend(ctx context.Context, userID int64, limit int) ([]int64, error) {
	if limit <= 0 {
		return nil, nil
	}

	own, err := r.repo.InteractionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load own interactions: %w", err)
	}
	if len(own) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(own))
	for _, it := range own {
		seen[it.ContentID] = struct{}{}
	}

	// neighbor discovery: anyone who shares an interacted content
	neighborSet := make(map[int64]struct{})
	neighbors := make([]int64, 0)
	for contentID := range seen {
		users, err := r.repo.UsersByContent(ctx, contentID, userID, r.fanOut)
		if err != nil {
			return nil, fmt.Errorf("find neighbors for content %d: %w", contentID, err)
		}
		for _, id := range users {
			if _, ok := neighborSet[id]; ok {
				continue
			}
			neighborSet[id] = struct{}{}
			neighbors = append(neighbors, id)
		}
	}
	if len(neighbors) == 0 {
		return nil, nil
	}

	neighborInteractions, err := r.repo.InteractionsByUsers(ctx, neighbors)
	if err != nil {
		return nil, fmt.Errorf("load neighbor interactions: %w", err)
	}

	// weighted accumulation; order slice keeps insertion order for stable ties
	scores := make(map[int64]float64)
	order := make([]int64, 0)
	for _, it := range neighborInteractions {
		if _, alreadySeen := seen[it.ContentID]; alreadySeen {
			continue
		}
		w := cfWeights[it.InteractionType]
		if w == 0 {
			continue
		}
		if _, ok := scores[it.ContentID]; !ok {
			order = append(order, it.ContentID)
		}
		scores[it.ContentID] += w
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if limit > len(order) {
		limit = len(order)
	}
	return order[:limit], nil
}

// RecommendedSource adapts the Recommender to the candidate Source contract
// so the composer can blend it with the other generators.
type RecommendedSource struct {
	rec *Recommender
}

func NewRecommendedSource(rec *Recommender) *RecommendedSource {
	return &RecommendedSource{rec: rec}
}

func (s *RecommendedSource) Name() string { return "recommended" }

func (s *RecommendedSource) Generate(ctx context.Context, q CandidateQuery) ([]int64, error) {
	// overfetch so exclusion filtering still fills the quota
	ids, err := s.rec.Recommend(ctx, q.UserID, q.Limit*poolOverfetch)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, q.Limit)
	for _, id := range ids {
		if q.Excluded(id) {
			continue
		}
		out = append(out, id)
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}
