package handlers

import (
	"StudyArchive/internal/config"
	"StudyArchive/internal/middleware"
	"StudyArchive/internal/service"
	"StudyArchive/internal/validation"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и проверки занятости.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register регистрирует нового пользователя.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: username, email, password")
		return
	}
	// пофилдовая валидация; сообщения отдаются как есть
	for _, res := range []validation.Result{
		validation.ValidateUsername(req.Username, nil),
		validation.ValidateEmail(req.Email, nil),
		validation.ValidatePassword(req.Password, nil),
	} {
		if !res.IsValid {
			writeError(w, http.StatusBadRequest, res.Message)
			return
		}
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already exists")
	case err != nil:
		h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
	default:
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "User registered successfully",
			"userId":  user.ID,
		})
	}
}

// Login проверяет учётные данные и ставит auth cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: username, password")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Username not found")
	case errors.Is(err, service.ErrBadPassword):
		writeError(w, http.StatusUnauthorized, "Incorrect password")
	case err != nil:
		h.Logger.Errorw("Login: service error", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to login")
	default:
		if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
			h.Logger.Errorw("Login: failed to set auth cookie", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to login")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"user": map[string]any{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
			},
		})
	}
}

// CheckUsername сообщает, занято ли имя пользователя.
func (h *UserHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	exists, err := h.UserService.UsernameExists(r.Context(), username)
	if err != nil {
		h.Logger.Errorw("CheckUsername: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to check username")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "exists": exists})
}

// CheckEmail сообщает, занят ли email.
func (h *UserHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	exists, err := h.UserService.EmailExists(r.Context(), email)
	if err != nil {
		h.Logger.Errorw("CheckEmail: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to check email")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "exists": exists})
}
