package feed

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Source produces an ordered list of candidate content ids for one feed page.
// Implementations must honor the exclusion set and the language-weighting
// convention of CandidateQuery.
type Source interface {
	Name() string
	Generate(ctx context.Context, q CandidateQuery) ([]int64, error)
}

// CandidateReader is the query surface the candidate sources need. Both
// methods already filter out blocked creators, the requesting user's own
// content and non-ACTIVE content in SQL; scoring happens in memory over the
// returned rows.
type CandidateReader interface {
	// RecentFromFollowed returns stats for the most recent content of
	// creators the user follows, newest first.
	RecentFromFollowed(ctx context.Context, userID int64, limit int, category string) ([]ContentStat, error)

	// CandidatePool returns stats for recent active content from across the
	// platform, newest first.
	CandidatePool(ctx context.Context, userID int64, limit int, category string) ([]ContentStat, error)
}

// poolOverfetch widens repo fetches so enough candidates survive the
// exclusion filter.
const poolOverfetch = 3

// FollowingSource serves the most recent content from followed creators.
type FollowingSource struct {
	repo CandidateReader
}

func NewFollowingSource(repo CandidateReader) *FollowingSource {
	return &FollowingSource{repo: repo}
}

func (s *FollowingSource) Name() string { return "following" }

func (s *FollowingSource) Generate(ctx context.Context, q CandidateQuery) ([]int64, error) {
	stats, err := s.repo.RecentFromFollowed(ctx, q.UserID, q.Limit*poolOverfetch, q.Category)
	if err != nil {
		return nil, err
	}

	// rows arrive newest-first; only exclusion filtering is left
	ids := make([]int64, 0, q.Limit)
	for _, st := range stats {
		if q.Excluded(st.ContentID) {
			continue
		}
		ids = append(ids, st.ContentID)
		if len(ids) == q.Limit {
			break
		}
	}
	return ids, nil
}

// PopularSource ranks the candidate pool by weighted interaction counts
// times the language multiplier.
type PopularSource struct {
	repo CandidateReader
}

func NewPopularSource(repo CandidateReader) *PopularSource {
	return &PopularSource{repo: repo}
}

func (s *PopularSource) Name() string { return "popular" }

func (s *PopularSource) Generate(ctx context.Context, q CandidateQuery) ([]int64, error) {
	return rankPool(ctx, s.repo, q, func(st ContentStat) float64 {
		return popularityScore(st) * languageMultiplier(st.Language, q.Language)
	})
}

// NewSource ranks the candidate pool by recency times the language
// multiplier: newest-and-matching-language first.
type NewSource struct {
	repo CandidateReader
	now  func() time.Time
}

func NewNewSource(repo CandidateReader) *NewSource {
	return &NewSource{repo: repo, now: time.Now}
}

func (s *NewSource) Name() string { return "new" }

func (s *NewSource) Generate(ctx context.Context, q CandidateQuery) ([]int64, error) {
	now := s.now()
	return rankPool(ctx, s.repo, q, func(st ContentStat) float64 {
		ageHours := now.Sub(st.CreatedAt).Hours()
		if ageHours < 0 {
			ageHours = 0
		}
		recency := 1.0 / (1.0 + ageHours)
		return recency * languageMultiplier(st.Language, q.Language)
	})
}

// RandomSource ranks the candidate pool by a uniform random score times the
// language multiplier: diversity that still favors the user's language.
type RandomSource struct {
	repo CandidateReader

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSource(repo CandidateReader) *RandomSource {
	return &RandomSource{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *RandomSource) Name() string { return "random" }

func (s *RandomSource) Generate(ctx context.Context, q CandidateQuery) ([]int64, error) {
	return rankPool(ctx, s.repo, q, func(st ContentStat) float64 {
		s.mu.Lock()
		r := s.rng.Float64()
		s.mu.Unlock()
		return r * languageMultiplier(st.Language, q.Language)
	})
}

// rankPool fetches the shared candidate pool, drops excluded ids, scores the
// rest and returns the top q.Limit ids by descending score. The sort is
// stable, so ties keep pool order.
func rankPool(ctx context.Context, repo CandidateReader, q CandidateQuery, score func(ContentStat) float64) ([]int64, error) {
	stats, err := repo.CandidatePool(ctx, q.UserID, q.Limit*poolOverfetch, q.Category)
	if err != nil {
		return nil, err
	}

	type scored struct {
		id    int64
		score float64
	}
	ranked := make([]scored, 0, len(stats))
	for _, st := range stats {
		if q.Excluded(st.ContentID) {
			continue
		}
		ranked = append(ranked, scored{id: st.ContentID, score: score(st)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := q.Limit
	if n > len(ranked) {
		n = len(ranked)
	}
	ids := make([]int64, 0, n)
	for _, r := range ranked[:n] {
		ids = append(ids, r.id)
	}
	return ids, nil
}
