package feed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/12OneTwo12/upvy-sub004/internal/config"
)

// QuotaSource pairs a candidate source with its per-page quota.
type QuotaSource struct {
	Source Source
	Quota  int
}

// Composer blends candidate sources into a single page of content ids.
//
// Sources run in priority order. Each gets its configured quota; duplicates
// across sources are dropped keeping the first-seen position. A failing
// source is logged and skipped, never failing the page. After the quota
// pass, remaining source output tops the page up to pageSize.
type Composer struct {
	sources  []QuotaSource
	pageSize int
	logger   zerolog.Logger
}

func NewComposer(sources []QuotaSource, pageSize int, logger zerolog.Logger) *Composer {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Composer{
		sources:  sources,
		pageSize: pageSize,
		logger:   logger.With().Str("component", "feed_composer").Logger(),
	}
}

// DefaultQuotaSources wires the five standard sources in priority order with
// quotas from config.
func DefaultQuotaSources(cfg config.FeedConfig, repo CandidateReader, rec *Recommender) []QuotaSource {
	return []QuotaSource{
		{Source: NewFollowingSource(repo), Quota: cfg.FollowingQuota},
		{Source: NewRecommendedSource(rec), Quota: cfg.RecommendedQuota},
		{Source: NewPopularSource(repo), Quota: cfg.PopularQuota},
		{Source: NewNewSource(repo), Quota: cfg.NewQuota},
		{Source: NewRandomSource(repo), Quota: cfg.RandomQuota},
	}
}

// Compose produces one page of content ids for the query. q.Limit is
// ignored; the composer derives per-source limits from quotas and pageSize.
func (c *Composer) Compose(ctx context.Context, q CandidateQuery) []int64 {
	page := make([]int64, 0, c.pageSize)
	chosen := make(map[int64]struct{}, c.pageSize)
	leftovers := make([][]int64, 0, len(c.sources))

	appendID := func(id int64) bool {
		if _, ok := chosen[id]; ok {
			return false
		}
		chosen[id] = struct{}{}
		page = append(page, id)
		return true
	}

	// quota pass
	for _, qs := range c.sources {
		if len(page) >= c.pageSize {
			break
		}
		quota := qs.Quota
		if quota <= 0 {
			continue
		}

		sq := q
		sq.Limit = quota + len(chosen) // room for cross-source duplicates
		ids, err := qs.Source.Generate(ctx, sq)
		if err != nil {
			// a single failing source degrades the page, never the request
			c.logger.Warn().Err(err).Str("source", qs.Source.Name()).Msg("candidate source failed")
			continue
		}

		taken := 0
		for i, id := range ids {
			if taken == quota || len(page) >= c.pageSize {
				leftovers = append(leftovers, ids[i:])
				break
			}
			if appendID(id) {
				taken++
			}
		}
	}

	// top-up pass from leftover candidates, still in priority order
	for _, rest := range leftovers {
		for _, id := range rest {
			if len(page) >= c.pageSize {
				return page
			}
			appendID(id)
		}
	}

	return page
}
