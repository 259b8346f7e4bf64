package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AuthHandler serves account endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Institution string   `json:"institution"`
	ORCID       *string  `json:"orcid"`
	Roles       []string `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        userResponse `json:"user"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	roles := make([]domain.UserRole, len(req.Roles))
	for i, role := range req.Roles {
		roles[i] = domain.UserRole(role)
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Institution: req.Institution,
		ORCID:       req.ORCID,
		Roles:       roles,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		User:        toUserResponse(result.User),
	}
}
