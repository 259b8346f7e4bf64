// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarsojabbes/science/internal/adapter/postgres"
	"github.com/tarsojabbes/science/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{
	"id", "name", "email", "password_hash", "institution", "orcid", "roles", "created_at", "updated_at",
}

const createUserSQL = `
INSERT INTO users (id, name, email, password_hash, institution, orcid, roles, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, email, password_hash, institution, orcid, roles, created_at, updated_at`

const existingIDsSQL = `SELECT id FROM users WHERE id = ANY($1::uuid[])`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, uuid.Nil)
}

// GetByIDs returns the users with the given IDs in no particular order.
// Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	var rows []userRow
	query := postgres.Builder.Select(userColumns...).From("users").Where(sq.Eq{"id": ids})
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// ExistingIDs returns the subset of ids that belong to a user.
func (r *Repo) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	var found []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &found, existingIDsSQL, ids); err != nil {
		return nil, fmt.Errorf("check user ids: %w", err)
	}
	return found, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists on a duplicate email or ORCID.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	roles := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		roles[i] = string(role)
	}

	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, createUserSQL,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Institution, u.ORCID, roles, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound)
		}
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Institution  string    `db:"institution"`
	ORCID        *string   `db:"orcid"`
	Roles        []string  `db:"roles"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	roles := make([]domain.UserRole, len(row.Roles))
	for i, r := range row.Roles {
		roles[i] = domain.UserRole(r)
	}
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Institution:  row.Institution,
		ORCID:        row.ORCID,
		Roles:        roles,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
