package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/service"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
)

// refreshCookieName is the HTTP-only cookie carrying the refresh token.
const refreshCookieName = "refreshToken"

// AuthHandler handles HTTP requests for auth endpoints.
type AuthHandler struct {
	service      *service.AuthService
	refreshTTL   time.Duration
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler. secureCookie should be
// true in production so the refresh cookie is HTTPS-only.
func NewAuthHandler(svc *service.AuthService, refreshTTL time.Duration, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		refreshTTL:   refreshTTL,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// --- Request DTOs ---

// RegisterRequest is the JSON request body for user registration.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest is the JSON request body for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the JSON request body for changing the password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// --- Cookie helpers ---

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func refreshTokenFromCookie(r *http.Request) string {
	c, err := r.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// --- Handlers ---

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteCreated(w, user, "Registration successful")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	httputil.WriteData(w, result, "Login successful")
}

// Refresh handles POST /api/auth/refresh. The refresh token comes from the
// cookie only; a successful refresh rotates it.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	pair, err := h.service.Refresh(r.Context(), refreshTokenFromCookie(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	httputil.WriteData(w, pair, "Token refreshed")
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), currentUser(r).ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, user, "")
}

// Logout handles POST /api/auth/logout. Requires a bearer token; deletes the
// record matching the cookie and clears the cookie either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), refreshTokenFromCookie(r)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.clearRefreshCookie(w)
	httputil.WriteData(w, nil, "Logged out")
}

// ChangePassword handles POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), currentUser(r).ID, req.CurrentPassword, req.NewPassword); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	// Every stored refresh record is gone; this session's cookie is dead too.
	h.clearRefreshCookie(w)
	httputil.WriteData(w, nil, "Password changed")
}
