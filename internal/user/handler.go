package user

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/dbmysql"
)

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublic mounts the unauthenticated auth routes.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
}

// RegisterAuthed mounts the routes behind the auth middleware.
func (h *Handler) RegisterAuthed(r *mux.Router) {
	r.HandleFunc("/users/me", h.Me).Methods(http.MethodGet)
	r.HandleFunc("/users/me", h.UpdateProfile).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.Profile).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/follow", h.Follow).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/follow", h.Unfollow).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id}/following", h.Following).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/followers", h.Followers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/block", h.Block).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/block", h.Unblock).Methods(http.MethodDelete)
	r.HandleFunc("/devices", h.RegisterDevice).Methods(http.MethodPost)
	r.HandleFunc("/devices", h.ListDevices).Methods(http.MethodGet)
	r.HandleFunc("/devices", h.RemoveDevice).Methods(http.MethodDelete)
}

type registerRequest struct {
	Handle            string `json:"handle"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	PreferredLanguage string `json:"preferred_language"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *dbmysql.User `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	user, token, err := h.svc.RegisterUser(r.Context(), req.Handle, req.Email, req.Password, req.PreferredLanguage)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

type loginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	user, token, err := h.svc.LoginUser(r.Context(), req.Handle, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	user, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Email             string `json:"email"`
	Bio               string `json:"bio"`
	PreferredLanguage string `json:"preferred_language"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.UpdateProfile(r.Context(), userID, req.Email, req.Bio, req.PreferredLanguage); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	targetID, valid := pathUserID(r)
	if !valid {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	user, err := h.svc.GetProfile(r.Context(), targetID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func pathUserID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) graphAction(w http.ResponseWriter, r *http.Request, action func(userID, targetID int64) error, status string) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	targetID, valid := pathUserID(r)
	if !valid {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	if err := action(userID, targetID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	h.graphAction(w, r, func(userID, targetID int64) error {
		return h.svc.Follow(r.Context(), userID, targetID)
	}, "following")
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.graphAction(w, r, func(userID, targetID int64) error {
		return h.svc.Unfollow(r.Context(), userID, targetID)
	}, "unfollowed")
}

func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	h.graphAction(w, r, func(userID, targetID int64) error {
		return h.svc.Block(r.Context(), userID, targetID)
	}, "blocked")
}

func (h *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.graphAction(w, r, func(userID, targetID int64) error {
		return h.svc.Unblock(r.Context(), userID, targetID)
	}, "unblocked")
}

type userPage struct {
	Users []*dbmysql.User `json:"users"`
}

func (h *Handler) Following(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.ListFollowing)
}

func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.ListFollowers)
}

func (h *Handler) listEdges(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID, afterID int64, limit int) ([]*dbmysql.User, error)) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}
	targetID, valid := pathUserID(r)
	if !valid {
		common.WriteBadRequest(w, "invalid id")
		return
	}

	afterID, _ := strconv.ParseInt(r.URL.Query().Get("after"), 10, 64)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := list(r.Context(), targetID, afterID, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, userPage{Users: users})
}

type deviceRequest struct {
	DeviceToken string `json:"device_token"`
	Platform    string `json:"platform"`
}

func (h *Handler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	var req deviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.RegisterDevice(r.Context(), userID, req.DeviceToken, req.Platform); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (h *Handler) RemoveDevice(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	var req deviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.RemoveDevice(r.Context(), req.DeviceToken); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}

type devicePage struct {
	Devices []*dbmysql.Device `json:"devices"`
}

func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	devices, err := h.svc.GetUserDevices(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, devicePage{Devices: devices})
}
