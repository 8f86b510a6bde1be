package interaction

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type Handler struct {
	svc Usecase
}

func NewHandler(svc Usecase) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the interaction routes on an authenticated subrouter.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/content/{id}/like", h.Like).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}/like", h.Unlike).Methods(http.MethodDelete)
	r.HandleFunc("/content/{id}/save", h.Save).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}/save", h.Unsave).Methods(http.MethodDelete)
	r.HandleFunc("/content/{id}/share", h.Share).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}/view", h.View).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}/comments", h.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}/comments", h.ListComments).Methods(http.MethodGet)
	r.HandleFunc("/comments/{id}", h.RemoveComment).Methods(http.MethodDelete)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func requestIdentity(w http.ResponseWriter, r *http.Request) (userID, resourceID int64, ok bool) {
	userID, authed := common.UserIDFromContext(r.Context())
	if !authed {
		common.WriteError(w, common.ErrUnauthorized)
		return 0, 0, false
	}
	resourceID, valid := pathID(r)
	if !valid {
		common.WriteBadRequest(w, "invalid id")
		return 0, 0, false
	}
	return userID, resourceID, true
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Like(r.Context(), userID, contentID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Unlike(r.Context(), userID, contentID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	state, err := h.svc.SaveContent(r.Context(), userID, contentID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) Unsave(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	state, err := h.svc.UnsaveContent(r.Context(), userID, contentID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	if err := h.svc.Share(r.Context(), userID, contentID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "shared"})
}

func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	if err := h.svc.RecordView(r.Context(), userID, contentID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	comment, err := h.svc.AddComment(r.Context(), userID, contentID, req.Text)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, comment)
}

func (h *Handler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveComment(r.Context(), userID, commentID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

type commentPage struct {
	Comments   []dbmysql.Comment `json:"comments"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	_, contentID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	comments, next, err := h.svc.ListComments(r.Context(), contentID, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, commentPage{Comments: comments, NextCursor: next})
}
