package content

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

// uploads are capped at 100 MB in memory-backed multipart parsing
const maxUploadBytes = 100 << 20

type Handler struct {
	svc Usecase
}

func NewHandler(svc Usecase) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/content", h.Upload).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/content/{id}", h.UpdateMetadata).Methods(http.MethodPut)
	r.HandleFunc("/content/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/content/{id}/status", h.SetStatus).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}/content", h.ListByCreator).Methods(http.MethodGet)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteBadRequest(w, "invalid multipart request")
		return
	}

	mediaFile, mediaHeader, err := r.FormFile("media")
	if err != nil {
		common.WriteBadRequest(w, "media file is required")
		return
	}
	defer mediaFile.Close()

	in := UploadInput{
		CreatorID:   userID,
		Type:        r.FormValue("type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Tags:        splitTags(r.FormValue("tags")),
		Language:    r.FormValue("language"),
		Filename:    mediaHeader.Filename,
		MimeType:    partMimeType(mediaHeader),
		Media:       mediaFile,
	}

	thumbFile, thumbHeader, err := r.FormFile("thumbnail")
	if err == nil {
		defer thumbFile.Close()
		in.Thumb = thumbFile
		in.ThumbFilename = thumbHeader.Filename
		in.ThumbMimeType = partMimeType(thumbHeader)
	}

	created, err := h.svc.Upload(r.Context(), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, created)
}

func partMimeType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	contentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || contentID <= 0 {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	detail, err := h.svc.Get(r.Context(), userID, contentID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, detail)
}

type metadataRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
}

func (h *Handler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	contentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || contentID <= 0 {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	var req metadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	meta := &dbmysql.ContentMetadata{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        strings.Join(req.Tags, ","),
		Language:    req.Language,
	}
	if err := h.svc.UpdateMetadata(r.Context(), userID, contentID, meta); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, meta)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	contentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || contentID <= 0 {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.SetStatus(r.Context(), userID, contentID, req.Status); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	contentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || contentID <= 0 {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, contentID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

type creatorPage struct {
	Contents   []dbmysql.Content `json:"contents"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func (h *Handler) ListByCreator(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	creatorID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || creatorID <= 0 {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	contents, next, err := h.svc.ListByCreator(r.Context(), creatorID, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, creatorPage{Contents: contents, NextCursor: next})
}
