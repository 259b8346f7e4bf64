package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/config"
	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/transport/dataloader"
	"github.com/tarsojabbes/science/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type userBatchLoader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// RouterDeps groups everything NewRouter needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Tokens    tokenValidator
	Users     userBatchLoader
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	// Limiter is nil when rate limiting is disabled.
	Limiter *middleware.RateLimiter

	Health   *HealthHandler
	Auth     *AuthHandler
	Journals *JournalHandler
	Roles    *RoleHandler
	Papers   *PaperHandler
	Reviews  *ReviewHandler
	Issues   *IssueHandler
}

// NewRouter builds the HTTP handler. Probes bypass the API middleware so
// they stay cheap and are never rate limited.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()

	public := func(pattern string, h http.HandlerFunc) { api.Handle(pattern, h) }
	private := func(pattern string, h http.HandlerFunc) { api.Handle(pattern, middleware.RequireAuth(h)) }

	limit := func(perMinute int) middleware.Middleware {
		if d.Limiter == nil {
			return nil
		}
		return d.Limiter.Limit(perMinute)
	}
	authLimit := middleware.Chain(limit(d.RateLimit.AuthPerMinute))

	api.Handle("POST /auth/register", authLimit(http.HandlerFunc(d.Auth.Register)))
	api.Handle("POST /auth/login", authLimit(http.HandlerFunc(d.Auth.Login)))
	private("GET /users/me", d.Auth.Me)
	private("GET /users/me/papers", d.Papers.ListMine)
	private("GET /users/me/reviews", d.Reviews.ListMine)
	private("GET /users/me/pending-reviews", d.Reviews.ListPending)
	private("GET /users/me/reviewer-journals", d.Roles.MyReviewerJournals)

	public("GET /journals", d.Journals.List)
	public("GET /journals/{id}", d.Journals.Get)
	private("POST /journals", d.Journals.Create)

	public("GET /journals/{id}/editors", d.Roles.ListEditors)
	private("POST /journals/{id}/editors", d.Roles.AddEditor)
	private("DELETE /journals/{id}/editors/{userId}", d.Roles.RemoveEditor)

	public("GET /journals/{id}/reviewers", d.Roles.ListReviewers)
	public("GET /journals/{id}/reviewers/{userId}", d.Roles.GetReviewer)
	private("POST /journals/{id}/reviewers", d.Roles.AddReviewer)
	private("DELETE /journals/{id}/reviewers/{userId}", d.Roles.RemoveReviewer)
	private("POST /journals/{id}/reviewers/{userId}/activate", d.Roles.ActivateReviewer)
	private("POST /journals/{id}/reviewers/{userId}/deactivate", d.Roles.DeactivateReviewer)
	private("PUT /journals/{id}/reviewers/{userId}/expertise", d.Roles.UpdateExpertise)

	public("GET /papers", d.Papers.List)
	public("GET /papers/{id}", d.Papers.Get)
	private("POST /papers", d.Papers.Create)
	private("PATCH /papers/{id}", d.Papers.Update)
	private("DELETE /papers/{id}", d.Papers.Delete)

	public("GET /papers/{id}/reviews", d.Reviews.ListByPaper)
	private("POST /papers/{id}/reviews", d.Reviews.Request)
	public("GET /reviews", d.Reviews.List)
	public("GET /reviews/{id}", d.Reviews.Get)
	private("POST /reviews/{id}/results", d.Reviews.SubmitResult)
	private("PATCH /reviews/{id}/status", d.Reviews.UpdateStatus)

	public("GET /issues", d.Issues.List)
	public("GET /journals/{id}/issues", d.Issues.List)
	public("GET /issues/{id}", d.Issues.Get)
	private("POST /journals/{id}/issues", d.Issues.Create)
	private("PUT /issues/{id}", d.Issues.Update)
	private("DELETE /issues/{id}", d.Issues.Delete)

	stack := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		limit(d.RateLimit.APIPerMinute),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
		dataloader.Middleware(d.Users),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.Health.Live)
	root.HandleFunc("GET /ready", d.Health.Ready)
	root.HandleFunc("GET /health", d.Health.Health)
	root.Handle("/", stack(api))

	return root
}
