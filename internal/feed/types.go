package feed

import (
	"time"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// Popularity score weights per interaction counter.
const (
	viewWeight    = 1.0
	likeWeight    = 5.0
	commentWeight = 3.0
	saveWeight    = 7.0
	shareWeight   = 10.0
)

// Language preference multipliers. Every candidate source applies the same
// convention so scores stay comparable across sources.
const (
	languageMatchMultiplier = 2.0
	languageMissMultiplier  = 0.5
)

// CandidateQuery is the common input to every candidate source.
type CandidateQuery struct {
	UserID   int64
	Limit    int
	Exclude  map[int64]struct{} // content ids already shown
	Category string             // optional filter
	Language string             // user's preferred language, "" = no preference
}

// Excluded reports whether a content id is in the exclusion set.
func (q CandidateQuery) Excluded(contentID int64) bool {
	_, ok := q.Exclude[contentID]
	return ok
}

// ContentStat is a candidate row fetched for ranking: the id plus everything
// the sources need to score it in memory.
type ContentStat struct {
	ContentID    int64
	CreatorID    int64
	Language     string
	CreatedAt    time.Time
	LikeCount    int64
	CommentCount int64
	SaveCount    int64
	ShareCount   int64
	ViewCount    int64
}

// FeedItem is a fully hydrated feed entry.
type FeedItem struct {
	Content      dbmysql.Content            `json:"content"`
	Metadata     *dbmysql.ContentMetadata   `json:"metadata,omitempty"`
	Interactions dbmysql.ContentInteraction `json:"interactions"`
	IsLiked      bool                       `json:"is_liked"`
	IsSaved      bool                       `json:"is_saved"`
}

// FeedPage is one page of the composed feed plus the continuation cursor.
type FeedPage struct {
	Items      []FeedItem `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// languageMultiplier implements the shared language-weighting convention.
// No stated preference leaves scores untouched.
func languageMultiplier(contentLang, preferred string) float64 {
	if preferred == "" {
		return 1.0
	}
	if contentLang == preferred {
		return languageMatchMultiplier
	}
	return languageMissMultiplier
}

// popularityScore is the weighted interaction-count score before the
// language multiplier.
func popularityScore(s ContentStat) float64 {
	return float64(s.ViewCount)*viewWeight +
		float64(s.LikeCount)*likeWeight +
		float64(s.CommentCount)*commentWeight +
		float64(s.SaveCount)*saveWeight +
		float64(s.ShareCount)*shareWeight
}
