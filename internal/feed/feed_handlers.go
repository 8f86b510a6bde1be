package feed

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type FeedHandlers struct {
	FeedSvc FeedUsecase
}

func NewFeedHandlers(svc FeedUsecase) *FeedHandlers {
	return &FeedHandlers{FeedSvc: svc}
}

// Register mounts the feed routes on an authenticated subrouter.
func (h *FeedHandlers) Register(r *mux.Router) {
	r.HandleFunc("/feed", h.GetFeed).Methods(http.MethodGet)
	r.HandleFunc("/feed/recommended", h.GetRecommended).Methods(http.MethodGet)
}

// GetFeed handles GET /feed?cursor=&category=&language=
func (h *FeedHandlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	category := r.URL.Query().Get("category")
	if category != "" && !dbmysql.IsValidCategory(category) {
		common.WriteBadRequest(w, "unknown category")
		return
	}

	language := r.URL.Query().Get("language")
	if err := common.ValidateLanguage(language); err != nil {
		common.WriteBadRequest(w, err.Error())
		return
	}

	page, err := h.FeedSvc.GetFeed(r.Context(), userID, r.URL.Query().Get("cursor"), category, language)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, page)
}

// GetRecommended handles GET /feed/recommended?limit= and returns raw
// collaborative-filter ids.
func (h *FeedHandlers) GetRecommended(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			common.WriteBadRequest(w, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	ids, err := h.FeedSvc.Recommend(r.Context(), userID, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"content_ids": ids})
}
