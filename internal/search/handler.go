package search

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
)

type Handler struct {
	svc Usecase
}

func NewHandler(svc Usecase) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/search", h.Search).Methods(http.MethodGet)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	result, err := h.svc.Search(r.Context(),
		query.Get("q"),
		query.Get("category"),
		query.Get("language"),
		query.Get("cursor"),
		limit,
	)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}
