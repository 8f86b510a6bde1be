package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmongo"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

const maxTitleLength = 255

var contentTypes = map[string]struct{}{
	"VIDEO": {},
	"PHOTO": {},
	"QUIZ":  {},
}

// BlobStore is the media persistence surface, satisfied by
// dbmongo.MediaStorage.
type BlobStore interface {
	UploadFile(ctx context.Context, filename, mimeType string, uploaderID int64, content io.Reader) (*dbmongo.MediaFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// UploadInput carries one multipart publish request. Thumb is optional.
type UploadInput struct {
	CreatorID   int64
	Type        string
	Title       string
	Description string
	Category    string
	Tags        []string
	Language    string

	Filename string
	MimeType string
	Media    io.Reader

	ThumbFilename string
	ThumbMimeType string
	Thumb         io.Reader
}

// Detail is a single content item with its live counters.
type Detail struct {
	Content  dbmysql.Content            `json:"content"`
	Counters dbmysql.ContentInteraction `json:"counters"`
}

type Usecase interface {
	Upload(ctx context.Context, in UploadInput) (*dbmysql.Content, error)
	Get(ctx context.Context, requesterID, contentID int64) (*Detail, error)
	ListByCreator(ctx context.Context, creatorID int64, cursorToken string, limit int) ([]dbmysql.Content, string, error)
	UpdateMetadata(ctx context.Context, userID, contentID int64, meta *dbmysql.ContentMetadata) error
	SetStatus(ctx context.Context, userID, contentID int64, status string) error
	Delete(ctx context.Context, userID, contentID int64) error
}

type Service struct {
	repo  Repository
	blobs BlobStore
}

func NewService(repo Repository, blobs BlobStore) *Service {
	return &Service{repo: repo, blobs: blobs}
}

func (s *Service) Upload(ctx context.Context, in UploadInput) (*dbmysql.Content, error) {
	if err := validateUpload(&in); err != nil {
		return nil, err
	}

	media, err := s.blobs.UploadFile(ctx, in.Filename, in.MimeType, in.CreatorID, in.Media)
	if err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	var thumbID *string
	if in.Thumb != nil {
		thumb, err := s.blobs.UploadFile(ctx, in.ThumbFilename, in.ThumbMimeType, in.CreatorID, in.Thumb)
		if err != nil {
			s.discardBlob(ctx, media.ID)
			return nil, fmt.Errorf("store thumbnail: %w", err)
		}
		thumbID = &thumb.ID
	}

	content := &dbmysql.Content{
		CreatorID: in.CreatorID,
		Type:      in.Type,
		MediaFile: media.ID,
		ThumbFile: thumbID,
		Status:    "ACTIVE",
	}
	meta := &dbmysql.ContentMetadata{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Tags:        strings.Join(in.Tags, ","),
		Language:    in.Language,
	}

	if err := s.repo.Create(ctx, content, meta); err != nil {
		s.discardBlob(ctx, media.ID)
		if thumbID != nil {
			s.discardBlob(ctx, *thumbID)
		}
		return nil, err
	}

	content.Metadata = meta
	return content, nil
}

// discardBlob removes an orphaned upload after a failed publish. Best effort;
// a leaked blob is preferable to failing the error path.
func (s *Service) discardBlob(ctx context.Context, fileID string) {
	_ = s.blobs.DeleteFile(ctx, fileID)
}

func validateUpload(in *UploadInput) error {
	if _, ok := contentTypes[in.Type]; !ok {
		return fmt.Errorf("%w: unknown content type %q", common.ErrInvalidInput, in.Type)
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if len(in.Title) > maxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", common.ErrInvalidInput, maxTitleLength)
	}
	if !dbmysql.IsValidCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", common.ErrInvalidInput, in.Category)
	}
	if err := common.ValidateLanguage(in.Language); err != nil {
		return fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}
	if in.Media == nil {
		return fmt.Errorf("%w: media file is required", common.ErrInvalidInput)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, requesterID, contentID int64) (*Detail, error) {
	content, err := s.repo.ByID(ctx, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: content %d", common.ErrNotFound, contentID)
	}
	if err != nil {
		return nil, err
	}

	// hidden items stay visible to their creator
	if content.Status != "ACTIVE" && content.CreatorID != requesterID {
		return nil, fmt.Errorf("%w: content %d", common.ErrNotFound, contentID)
	}

	counters, err := s.repo.CountersFor(ctx, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counters = &dbmysql.ContentInteraction{ContentID: contentID}
	} else if err != nil {
		return nil, err
	}

	return &Detail{Content: *content, Counters: *counters}, nil
}

func (s *Service) ListByCreator(ctx context.Context, creatorID int64, cursorToken string, limit int) ([]dbmysql.Content, string, error) {
	cursor, err := common.DecodeCursor(cursorToken)
	if err != nil {
		return nil, "", err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	contents, err := s.repo.ByCreator(ctx, creatorID, cursor.LastID, limit)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(contents) == limit {
		nextCursor := &common.Cursor{LastID: contents[len(contents)-1].ContentID}
		next = nextCursor.Encode()
	}
	return contents, next, nil
}

// ownedContent loads the content and enforces that userID is its creator.
func (s *Service) ownedContent(ctx context.Context, userID, contentID int64) (*dbmysql.Content, error) {
	content, err := s.repo.ByID(ctx, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: content %d", common.ErrNotFound, contentID)
	}
	if err != nil {
		return nil, err
	}
	if content.CreatorID != userID {
		return nil, fmt.Errorf("%w: not the content creator", common.ErrForbidden)
	}
	return content, nil
}

func (s *Service) UpdateMetadata(ctx context.Context, userID, contentID int64, meta *dbmysql.ContentMetadata) error {
	meta.Title = strings.TrimSpace(meta.Title)
	if meta.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if len(meta.Title) > maxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", common.ErrInvalidInput, maxTitleLength)
	}
	if !dbmysql.IsValidCategory(meta.Category) {
		return fmt.Errorf("%w: unknown category %q", common.ErrInvalidInput, meta.Category)
	}
	if err := common.ValidateLanguage(meta.Language); err != nil {
		return fmt.Errorf("%w: %s", common.ErrInvalidInput, err)
	}

	if _, err := s.ownedContent(ctx, userID, contentID); err != nil {
		return err
	}

	meta.ContentID = contentID
	return s.repo.UpdateMetadata(ctx, meta)
}

func (s *Service) SetStatus(ctx context.Context, userID, contentID int64, status string) error {
	if status != "ACTIVE" && status != "HIDDEN" {
		return fmt.Errorf("%w: unknown status %q", common.ErrInvalidInput, status)
	}

	if _, err := s.ownedContent(ctx, userID, contentID); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, contentID, status)
}

// Delete soft-deletes the content row. Blobs stay in GridFS so the row can
// be restored by support tooling.
func (s *Service) Delete(ctx context.Context, userID, contentID int64) error {
	if _, err := s.ownedContent(ctx, userID, contentID); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, contentID)
}
