package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

const (
	minKeywordLength = 2
	maxKeywordLength = 100
)

type Result struct {
	Contents   []dbmysql.Content `json:"contents"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type Usecase interface {
	Search(ctx context.Context, keyword, category, language, cursorToken string, limit int) (*Result, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, keyword, category, language, cursorToken string, limit int) (*Result, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < minKeywordLength {
		return nil, fmt.Errorf("%w: keyword must be at least %d characters", common.ErrInvalidInput, minKeywordLength)
	}
	if len(keyword) > maxKeywordLength {
		return nil, fmt.Errorf("%w: keyword exceeds %d characters", common.ErrInvalidInput, maxKeywordLength)
	}
	if category != "" && !dbmysql.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", common.ErrInvalidInput, category)
	}
	if err := common.ValidateLanguage(language); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}

	cursor, err := common.DecodeCursor(cursorToken)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	contents, err := s.repo.Search(ctx, Query{
		Keyword:  keyword,
		Category: category,
		Language: language,
		AfterID:  cursor.LastID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	next := ""
	if len(contents) == limit {
		nextCursor := &common.Cursor{LastID: contents[len(contents)-1].ContentID}
		next = nextCursor.Encode()
	}
	return &Result{Contents: contents, NextCursor: next}, nil
}
