// Package journal implements the Journal repository using PostgreSQL.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarsojabbes/science/internal/adapter/postgres"
	"github.com/tarsojabbes/science/internal/domain"
)

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createJournalSQL = `
INSERT INTO journals (id, name, issn, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, issn, created_at, updated_at`

const getJournalSQL = `SELECT id, name, issn, created_at, updated_at FROM journals WHERE id = $1`

const listJournalsSQL = `
SELECT id, name, issn, created_at, updated_at
FROM journals
ORDER BY name, id
LIMIT $1 OFFSET $2`

const existsJournalSQL = `SELECT EXISTS(SELECT 1 FROM journals WHERE id = $1)`

// Create inserts a journal. Returns domain.ErrAlreadyExists on a duplicate ISSN.
func (r *Repo) Create(ctx context.Context, j *domain.Journal) (*domain.Journal, error) {
	var row journalRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, createJournalSQL,
		j.ID, j.Name, j.ISSN, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal", j.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a journal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error) {
	var row journalRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, getJournalSQL, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("journal %s: %w", id, domain.ErrJournalNotFound)
		}
		return nil, postgres.MapError(err, "journal", id)
	}

	j := row.toDomain()
	return &j, nil
}

// Exists reports whether a journal with the given ID exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsJournalSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "journal", id)
	}
	return exists, nil
}

// List returns journals ordered by name.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Journal, error) {
	var rows []journalRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, listJournalsSQL, limit, offset); err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}

	journals := make([]domain.Journal, len(rows))
	for i, row := range rows {
		journals[i] = row.toDomain()
	}
	return journals, nil
}

type journalRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	ISSN      string    `db:"issn"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row journalRow) toDomain() domain.Journal {
	return domain.Journal{
		ID:        row.ID,
		Name:      row.Name,
		ISSN:      row.ISSN,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
