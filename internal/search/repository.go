// Package search implements keyword lookup over content metadata.
package search

import (
	"context"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// Query narrows a keyword search. Category and Language are optional exact
// filters; AfterID is the keyset cursor position.
type Query struct {
	Keyword  string
	Category string
	Language string
	AfterID  int64
	Limit    int
}

type Repository interface {
	Search(ctx context.Context, q Query) ([]dbmysql.Content, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, q Query) ([]dbmysql.Content, error) {
	pattern := "%" + q.Keyword + "%"

	tx := r.db.WithContext(ctx).
		Model(&dbmysql.Content{}).
		Joins("JOIN content_metadata ON content_metadata.content_id = contents.content_id").
		Where("contents.status = ?", "ACTIVE").
		Where("content_metadata.title LIKE ? OR content_metadata.description LIKE ? OR content_metadata.tags LIKE ?",
			pattern, pattern, pattern)

	if q.Category != "" {
		tx = tx.Where("content_metadata.category = ?", q.Category)
	}
	if q.Language != "" {
		tx = tx.Where("content_metadata.language = ?", q.Language)
	}
	if q.AfterID > 0 {
		tx = tx.Where("contents.content_id < ?", q.AfterID)
	}

	var contents []dbmysql.Content
	err := tx.Preload("Metadata").
		Preload("Creator").
		Order("contents.content_id DESC").
		Limit(q.Limit).
		Find(&contents).Error
	return contents, err
}
