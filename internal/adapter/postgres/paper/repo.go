// Package paper implements the Paper repository using PostgreSQL.
// Researchers are stored in the paper_researchers join table in author order.
package paper

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

// Repo provides paper persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new paper repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var paperColumns = []string{
	"p.id", "p.name", "p.url", "p.journal_id", "p.issue_id", "p.status",
	"p.submission_date", "p.published_date", "p.created_at", "p.updated_at",
}

const insertPaperSQL = `
INSERT INTO papers (id, name, url, journal_id, status, submission_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const insertResearchersSQL = `
INSERT INTO paper_researchers (paper_id, user_id, position)
SELECT $1, r.user_id, r.ord - 1
FROM unnest($2::uuid[]) WITH ORDINALITY AS r(user_id, ord)`

const deleteResearchersSQL = `DELETE FROM paper_researchers WHERE paper_id = $1`

const researchersSQL = `
SELECT paper_id, user_id
FROM paper_researchers
WHERE paper_id = ANY($1::uuid[])
ORDER BY paper_id, position`

const updatePaperSQL = `
UPDATE papers SET name = $2, url = $3, updated_at = now() WHERE id = $1`

const updateStatusSQL = `
UPDATE papers SET status = $2, updated_at = now() WHERE id = $1`

const setPublicationSQL = `
UPDATE papers
SET status = $2, issue_id = $3, published_date = $4, updated_at = now()
WHERE id = $1`

const idsByIssueSQL = `SELECT id FROM papers WHERE issue_id = $1 ORDER BY id`

const deletePaperSQL = `DELETE FROM papers WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a paper with its researchers.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Paper, error) {
	return r.getOne(ctx, id, false)
}

// LockByID returns a paper and holds a row lock on it until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Paper, error) {
	return r.getOne(ctx, id, true)
}

// LockByIDs locks every existing paper among ids (in id order, to avoid
// deadlocks) and returns them. Missing ids are absent from the result.
func (r *Repo) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Paper, error) {
	if len(ids) == 0 {
		return []domain.Paper{}, nil
	}

	query := postgres.Builder.Select(paperColumns...).From("papers p").
		Where(sq.Eq{"p.id": ids}).
		OrderBy("p.id").
		Suffix("FOR UPDATE")

	return r.selectPapers(ctx, query)
}

// List returns papers matching the filter, newest submission first.
func (r *Repo) List(ctx context.Context, f domain.PaperFilter) ([]domain.Paper, error) {
	query := postgres.Builder.Select(paperColumns...).From("papers p").
		OrderBy("p.submission_date DESC", "p.id")

	if f.JournalID != nil {
		query = query.Where(sq.Eq{"p.journal_id": *f.JournalID})
	}
	if f.IssueID != nil {
		query = query.Where(sq.Eq{"p.issue_id": *f.IssueID})
	}
	if f.Status != nil {
		query = query.Where(sq.Eq{"p.status": string(*f.Status)})
	}
	if f.Search != nil && *f.Search != "" {
		query = query.Where(sq.ILike{"p.name": "%" + *f.Search + "%"})
	}
	if f.ResearcherID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM paper_researchers pr WHERE pr.paper_id = p.id AND pr.user_id = ?)",
			*f.ResearcherID,
		)
	}
	query = postgres.Page(query, domain.ClampLimit(f.Limit), f.Offset)

	return r.selectPapers(ctx, query)
}

// IDsByIssue returns the IDs of papers published in an issue.
func (r *Repo) IDsByIssue(ctx context.Context, issueID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, idsByIssueSQL, issueID); err != nil {
		return nil, fmt.Errorf("list papers by issue: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a paper and its researcher links. Must run inside a
// transaction so that a paper is never stored without researchers.
func (r *Repo) Create(ctx context.Context, p *domain.Paper) (*domain.Paper, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertPaperSQL,
		p.ID, p.Name, p.URL, p.JournalID, string(p.Status), p.SubmissionDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "paper", p.ID)
	}

	if err := r.SetResearchers(ctx, p.ID, p.ResearcherIDs); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, p.ID)
}

// SetResearchers replaces the researcher list of a paper, keeping the given order.
func (r *Repo) SetResearchers(ctx context.Context, paperID uuid.UUID, researcherIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteResearchersSQL, paperID); err != nil {
		return postgres.MapError(err, "paper_researchers", paperID)
	}
	if _, err := q.Exec(ctx, insertResearchersSQL, paperID, researcherIDs); err != nil {
		return postgres.MapError(err, "paper_researchers", paperID)
	}
	return nil
}

// Update changes the descriptive fields of a paper.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, url string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updatePaperSQL, id, name, url)
	if err != nil {
		return postgres.MapError(err, "paper", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paper %s: %w", id, domain.ErrPaperNotFound)
	}
	return nil
}

// UpdateStatus stores a new lifecycle status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaperStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateStatusSQL, id, string(status))
	if err != nil {
		return postgres.MapError(err, "paper", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paper %s: %w", id, domain.ErrPaperNotFound)
	}
	return nil
}

// SetPublication stores status, issue link and publication date together.
// A nil issueID detaches the paper from its issue.
func (r *Repo) SetPublication(ctx context.Context, id uuid.UUID, status domain.PaperStatus, issueID *uuid.UUID, publishedAt *time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, setPublicationSQL, id, string(status), issueID, publishedAt)
	if err != nil {
		return postgres.MapError(err, "paper", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paper %s: %w", id, domain.ErrPaperNotFound)
	}
	return nil
}

// Delete removes a paper. Its reviews and researcher links cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deletePaperSQL, id)
	if err != nil {
		return postgres.MapError(err, "paper", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paper %s: %w", id, domain.ErrPaperNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, lock bool) (*domain.Paper, error) {
	query := postgres.Builder.Select(paperColumns...).From("papers p").Where(sq.Eq{"p.id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build paper query: %w", err)
	}

	var row paperRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("paper %s: %w", id, domain.ErrPaperNotFound)
		}
		return nil, postgres.MapError(err, "paper", id)
	}

	papers := []domain.Paper{row.toDomain()}
	if err := r.attachResearchers(ctx, papers); err != nil {
		return nil, err
	}
	return &papers[0], nil
}

func (r *Repo) selectPapers(ctx context.Context, query sq.SelectBuilder) ([]domain.Paper, error) {
	var rows []paperRow
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("select papers: %w", err)
	}

	papers := make([]domain.Paper, len(rows))
	for i, row := range rows {
		papers[i] = row.toDomain()
	}
	if err := r.attachResearchers(ctx, papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (r *Repo) attachResearchers(ctx context.Context, papers []domain.Paper) error {
	if len(papers) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(papers))
	for i := range papers {
		ids[i] = papers[i].ID
	}

	var links []researcherRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &links, researchersSQL, ids); err != nil {
		return fmt.Errorf("load researchers: %w", err)
	}

	byPaper := make(map[uuid.UUID][]uuid.UUID, len(papers))
	for _, l := range links {
		byPaper[l.PaperID] = append(byPaper[l.PaperID], l.UserID)
	}
	for i := range papers {
		papers[i].ResearcherIDs = byPaper[papers[i].ID]
		if papers[i].ResearcherIDs == nil {
			papers[i].ResearcherIDs = []uuid.UUID{}
		}
	}
	return nil
}

type paperRow struct {
	ID             uuid.UUID  `db:"id"`
	Name           string     `db:"name"`
	URL            string     `db:"url"`
	JournalID      uuid.UUID  `db:"journal_id"`
	IssueID        *uuid.UUID `db:"issue_id"`
	Status         string     `db:"status"`
	SubmissionDate time.Time  `db:"submission_date"`
	PublishedDate  *time.Time `db:"published_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type researcherRow struct {
	PaperID uuid.UUID `db:"paper_id"`
	UserID  uuid.UUID `db:"user_id"`
}

func (row paperRow) toDomain() domain.Paper {
	return domain.Paper{
		ID:             row.ID,
		Name:           row.Name,
		URL:            row.URL,
		JournalID:      row.JournalID,
		IssueID:        row.IssueID,
		Status:         domain.PaperStatus(row.Status),
		SubmissionDate: row.SubmissionDate,
		PublishedDate:  row.PublishedDate,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
