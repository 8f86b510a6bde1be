// Package content manages the lifecycle of published items: upload into
// GridFS, metadata rows in MySQL, visibility and deletion.
package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type Repository interface {
	// Create inserts the content row, its metadata and a zeroed counter row
	// in one transaction.
	Create(ctx context.Context, content *dbmysql.Content, meta *dbmysql.ContentMetadata) error
	ByID(ctx context.Context, contentID int64) (*dbmysql.Content, error)
	CountersFor(ctx context.Context, contentID int64) (*dbmysql.ContentInteraction, error)
	ByCreator(ctx context.Context, creatorID, afterID int64, limit int) ([]dbmysql.Content, error)
	UpdateMetadata(ctx context.Context, meta *dbmysql.ContentMetadata) error
	UpdateStatus(ctx context.Context, contentID int64, status string) error
	SoftDelete(ctx context.Context, contentID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, content *dbmysql.Content, meta *dbmysql.ContentMetadata) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(content).Error; err != nil {
			return err
		}
		meta.ContentID = content.ContentID
		if err := tx.Create(meta).Error; err != nil {
			return err
		}
		// counters start at zero so feed hydration never misses a row
		counters := &dbmysql.ContentInteraction{ContentID: content.ContentID}
		return tx.Create(counters).Error
	})
}

func (r *repository) ByID(ctx context.Context, contentID int64) (*dbmysql.Content, error) {
	var content dbmysql.Content
	err := r.db.WithContext(ctx).
		Preload("Metadata").
		Preload("Creator").
		First(&content, "content_id = ?", contentID).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *repository) CountersFor(ctx context.Context, contentID int64) (*dbmysql.ContentInteraction, error) {
	var counters dbmysql.ContentInteraction
	err := r.db.WithContext(ctx).
		First(&counters, "content_id = ?", contentID).Error
	if err != nil {
		return nil, err
	}
	return &counters, nil
}

func (r *repository) ByCreator(ctx context.Context, creatorID, afterID int64, limit int) ([]dbmysql.Content, error) {
	var contents []dbmysql.Content
	q := r.db.WithContext(ctx).
		Preload("Metadata").
		Where("creator_id = ?", creatorID)
	if afterID > 0 {
		q = q.Where("content_id < ?", afterID)
	}
	err := q.Order("content_id DESC").
		Limit(limit).
		Find(&contents).Error
	return contents, err
}

func (r *repository) UpdateMetadata(ctx context.Context, meta *dbmysql.ContentMetadata) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ContentMetadata{}).
		Where("content_id = ?", meta.ContentID).
		Updates(map[string]interface{}{
			"title":       meta.Title,
			"description": meta.Description,
			"category":    meta.Category,
			"tags":        meta.Tags,
			"language":    meta.Language,
		}).Error
}

func (r *repository) UpdateStatus(ctx context.Context, contentID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Content{}).
		Where("content_id = ?", contentID).
		Update("status", status).Error
}

func (r *repository) SoftDelete(ctx context.Context, contentID int64) error {
	return r.db.WithContext(ctx).
		Delete(&dbmysql.Content{}, "content_id = ?", contentID).Error
}
