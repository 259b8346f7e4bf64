// Package issue implements the Issue repository using PostgreSQL.
// Paper membership lives on papers.issue_id and is managed by the paper repository.
package issue

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

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new issue repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var issueColumns = []string{
	"i.id", "i.journal_id", "i.number", "i.volume", "i.publication_date", "i.created_at", "i.updated_at",
}

const insertIssueSQL = `
INSERT INTO issues (id, journal_id, number, volume, publication_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const updateIssueSQL = `
UPDATE issues SET number = $2, volume = $3, updated_at = now() WHERE id = $1`

const deleteIssueSQL = `DELETE FROM issues WHERE id = $1`

const paperIDsSQL = `
SELECT issue_id, id AS paper_id FROM papers WHERE issue_id = ANY($1::uuid[]) ORDER BY issue_id, id`

// Create inserts an issue. Returns domain.ErrAlreadyExists when the journal
// already has an issue with the same volume and number.
func (r *Repo) Create(ctx context.Context, is *domain.Issue) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertIssueSQL,
		is.ID, is.JournalID, is.Number, is.Volume, is.PublicationDate, is.CreatedAt, is.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "issue", is.ID)
	}
	return nil
}

// GetByID returns an issue with the IDs of its papers.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	return r.getOne(ctx, id, false)
}

// LockByID returns an issue and holds a row lock on it until the
// surrounding transaction ends.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	return r.getOne(ctx, id, true)
}

// Update changes number and volume.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, number, volume int) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateIssueSQL, id, number, volume)
	if err != nil {
		return postgres.MapError(err, "issue", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("issue %s: %w", id, domain.ErrIssueNotFound)
	}
	return nil
}

// Delete removes an issue row. Callers detach papers first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteIssueSQL, id)
	if err != nil {
		return postgres.MapError(err, "issue", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("issue %s: %w", id, domain.ErrIssueNotFound)
	}
	return nil
}

// List returns issues, optionally restricted to one journal, newest volume first.
func (r *Repo) List(ctx context.Context, journalID *uuid.UUID, limit, offset int) ([]domain.Issue, error) {
	query := postgres.Builder.Select(issueColumns...).From("issues i").
		OrderBy("i.volume DESC", "i.number DESC", "i.id")
	if journalID != nil {
		query = query.Where(sq.Eq{"i.journal_id": *journalID})
	}
	query = postgres.Page(query, domain.ClampLimit(limit), offset)

	var rows []issueRow
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	issues := make([]domain.Issue, len(rows))
	for i, row := range rows {
		issues[i] = row.toDomain()
	}
	if err := r.attachPapers(ctx, issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, lock bool) (*domain.Issue, error) {
	query := postgres.Builder.Select(issueColumns...).From("issues i").Where(sq.Eq{"i.id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build issue query: %w", err)
	}

	var row issueRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("issue %s: %w", id, domain.ErrIssueNotFound)
		}
		return nil, postgres.MapError(err, "issue", id)
	}

	issues := []domain.Issue{row.toDomain()}
	if err := r.attachPapers(ctx, issues); err != nil {
		return nil, err
	}
	return &issues[0], nil
}

func (r *Repo) attachPapers(ctx context.Context, issues []domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(issues))
	for i := range issues {
		ids[i] = issues[i].ID
	}

	var links []struct {
		IssueID uuid.UUID `db:"issue_id"`
		PaperID uuid.UUID `db:"paper_id"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &links, paperIDsSQL, ids); err != nil {
		return fmt.Errorf("load issue papers: %w", err)
	}

	byIssue := make(map[uuid.UUID][]uuid.UUID, len(issues))
	for _, l := range links {
		byIssue[l.IssueID] = append(byIssue[l.IssueID], l.PaperID)
	}
	for i := range issues {
		issues[i].PaperIDs = byIssue[issues[i].ID]
		if issues[i].PaperIDs == nil {
			issues[i].PaperIDs = []uuid.UUID{}
		}
	}
	return nil
}

type issueRow struct {
	ID              uuid.UUID `db:"id"`
	JournalID       uuid.UUID `db:"journal_id"`
	Number          int       `db:"number"`
	Volume          int       `db:"volume"`
	PublicationDate time.Time `db:"publication_date"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (row issueRow) toDomain() domain.Issue {
	return domain.Issue{
		ID:              row.ID,
		JournalID:       row.JournalID,
		Number:          row.Number,
		Volume:          row.Volume,
		PublicationDate: row.PublicationDate,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
