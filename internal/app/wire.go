package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarsojabbes/science/internal/adapter/notify"
	"github.com/tarsojabbes/science/internal/adapter/postgres"
	issuerepo "github.com/tarsojabbes/science/internal/adapter/postgres/issue"
	journalrepo "github.com/tarsojabbes/science/internal/adapter/postgres/journal"
	paperrepo "github.com/tarsojabbes/science/internal/adapter/postgres/paper"
	reviewrepo "github.com/tarsojabbes/science/internal/adapter/postgres/review"
	rolerepo "github.com/tarsojabbes/science/internal/adapter/postgres/role"
	userrepo "github.com/tarsojabbes/science/internal/adapter/postgres/user"
	jwtauth "github.com/tarsojabbes/science/internal/auth"
	"github.com/tarsojabbes/science/internal/config"
	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/auth"
	"github.com/tarsojabbes/science/internal/service/issue"
	"github.com/tarsojabbes/science/internal/service/journal"
	"github.com/tarsojabbes/science/internal/service/paper"
	"github.com/tarsojabbes/science/internal/service/review"
	"github.com/tarsojabbes/science/internal/service/role"
	"github.com/tarsojabbes/science/internal/transport/middleware"
	"github.com/tarsojabbes/science/internal/transport/rest"
)

type reviewNotifier interface {
	ReviewAssigned(ctx context.Context, rv *domain.Review, paper *domain.Paper) error
	ReviewCompleted(ctx context.Context, rv *domain.Review, paper *domain.Paper) error
}

// NewHandler builds repositories, services and the router on top of pool.
// The returned cleanup stops background workers.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func()) {
	logger.Info("wiring components", configSummary(cfg)...)

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	journals := journalrepo.New(pool)
	papers := paperrepo.New(pool)
	reviews := reviewrepo.New(pool)
	roles := rolerepo.New(pool)
	issues := issuerepo.New(pool)

	var notifier reviewNotifier = notify.NewLogNotifier(logger)
	if cfg.Mail.Enabled {
		notifier = notify.NewMailer(logger, cfg.Mail, users)
	}

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := auth.NewService(logger, users, jwtManager, cfg.Auth)
	roleSvc := role.NewService(logger, journals, users, roles, nil)
	journalSvc := journal.NewService(logger, journals, roles, tx)
	paperSvc := paper.NewService(logger, papers, users, journals, reviews, roleSvc, tx)
	reviewSvc := review.NewService(logger, papers, reviews, roleSvc, notifier, tx)
	issueSvc := issue.NewService(logger, issues, papers, journals, tx)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Tokens:    authSvc,
		Users:     users,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,

		Health:   rest.NewHealthHandler(BuildVersion(), rest.HealthCheck{Name: "database", Target: pool}),
		Auth:     rest.NewAuthHandler(authSvc, logger),
		Journals: rest.NewJournalHandler(journalSvc, logger),
		Roles:    rest.NewRoleHandler(roleSvc, logger),
		Papers:   rest.NewPaperHandler(paperSvc, logger),
		Reviews:  rest.NewReviewHandler(reviewSvc, logger),
		Issues:   rest.NewIssueHandler(issueSvc, roleSvc, logger),
	})

	cleanup := func() {
		if limiter != nil {
			limiter.Stop()
		}
	}
	return handler, cleanup
}
