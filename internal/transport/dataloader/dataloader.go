// Package dataloader provides per-request loaders that batch the user
// lookups made while rendering reviews and papers into one query.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/tarsojabbes/science/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the Loaders, so create one per request.
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(
			newUsersBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.User](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
		),
	}
}

// Users resolves ids in one batch. Unknown ids map to nil.
func (l *Loaders) Users(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	users, errs := l.UserByID.LoadMany(ctx, ids)()
	out := make(map[uuid.UUID]*domain.User, len(ids))
	for i, id := range ids {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = users[i]
	}
	return out, nil
}

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.User], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware attaches a fresh Loaders to every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
