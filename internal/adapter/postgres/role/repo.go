// Package role implements journal-scoped editor and reviewer assignments
// using PostgreSQL.
package role

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

// Repo provides role-assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Editors
// ---------------------------------------------------------------------------

const addEditorSQL = `INSERT INTO journal_editors (journal_id, user_id, assigned_at) VALUES ($1, $2, $3)`

const removeEditorSQL = `DELETE FROM journal_editors WHERE journal_id = $1 AND user_id = $2`

const isEditorSQL = `SELECT EXISTS(SELECT 1 FROM journal_editors WHERE user_id = $1 AND journal_id = $2)`

const listEditorsSQL = `
SELECT journal_id, user_id, assigned_at
FROM journal_editors
WHERE journal_id = $1
ORDER BY assigned_at, user_id`

// AddEditor inserts an editor assignment.
// Returns domain.ErrAlreadyEditor when the pair already exists.
func (r *Repo) AddEditor(ctx context.Context, e domain.JournalEditor) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, addEditorSQL, e.JournalID, e.UserID, e.AssignedAt)
	if postgres.IsUniqueViolation(err, "") {
		return fmt.Errorf("journal %s user %s: %w", e.JournalID, e.UserID, domain.ErrAlreadyEditor)
	}
	if err != nil {
		return postgres.MapError(err, "journal_editor", e.UserID)
	}
	return nil
}

// RemoveEditor deletes an editor assignment and reports whether a row existed.
func (r *Repo) RemoveEditor(ctx context.Context, journalID, userID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeEditorSQL, journalID, userID)
	if err != nil {
		return false, postgres.MapError(err, "journal_editor", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// IsEditor reports whether userID edits journalID.
func (r *Repo) IsEditor(ctx context.Context, userID, journalID uuid.UUID) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, isEditorSQL, userID, journalID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "journal_editor", userID)
	}
	return ok, nil
}

// ListEditors returns the editors of a journal in assignment order.
func (r *Repo) ListEditors(ctx context.Context, journalID uuid.UUID) ([]domain.JournalEditor, error) {
	var rows []editorRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, listEditorsSQL, journalID); err != nil {
		return nil, fmt.Errorf("list editors: %w", err)
	}

	editors := make([]domain.JournalEditor, len(rows))
	for i, row := range rows {
		editors[i] = domain.JournalEditor(row)
	}
	return editors, nil
}

// ---------------------------------------------------------------------------
// Reviewers
// ---------------------------------------------------------------------------

var reviewerColumns = []string{"journal_id", "user_id", "expertise", "is_active", "assigned_at"}

const addReviewerSQL = `
INSERT INTO journal_reviewers (journal_id, user_id, expertise, is_active, assigned_at)
VALUES ($1, $2, $3, $4, $5)`

const removeReviewerSQL = `DELETE FROM journal_reviewers WHERE journal_id = $1 AND user_id = $2`

const isActiveReviewerSQL = `
SELECT EXISTS(SELECT 1 FROM journal_reviewers WHERE user_id = $1 AND journal_id = $2 AND is_active)`

const activeReviewerIDsSQL = `
SELECT user_id FROM journal_reviewers
WHERE journal_id = $1 AND is_active
ORDER BY user_id`

const setReviewerActiveSQL = `
UPDATE journal_reviewers SET is_active = $3 WHERE journal_id = $1 AND user_id = $2`

const updateExpertiseSQL = `
UPDATE journal_reviewers SET expertise = $3 WHERE journal_id = $1 AND user_id = $2`

// AddReviewer inserts a reviewer assignment.
// Returns domain.ErrAlreadyReviewer when the pair already exists, active or not.
func (r *Repo) AddReviewer(ctx context.Context, rv domain.JournalReviewer) error {
	expertise := rv.Expertise
	if expertise == nil {
		expertise = []string{}
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, addReviewerSQL,
		rv.JournalID, rv.UserID, expertise, rv.IsActive, rv.AssignedAt,
	)
	if postgres.IsUniqueViolation(err, "") {
		return fmt.Errorf("journal %s user %s: %w", rv.JournalID, rv.UserID, domain.ErrAlreadyReviewer)
	}
	if err != nil {
		return postgres.MapError(err, "journal_reviewer", rv.UserID)
	}
	return nil
}

// RemoveReviewer deletes a reviewer assignment and reports whether a row existed.
func (r *Repo) RemoveReviewer(ctx context.Context, journalID, userID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeReviewerSQL, journalID, userID)
	if err != nil {
		return false, postgres.MapError(err, "journal_reviewer", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// IsActiveReviewer reports whether userID is an active reviewer of journalID.
func (r *Repo) IsActiveReviewer(ctx context.Context, userID, journalID uuid.UUID) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, isActiveReviewerSQL, userID, journalID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "journal_reviewer", userID)
	}
	return ok, nil
}

// ActiveReviewerIDs returns the user IDs of every active reviewer of a journal,
// in a stable order. Callers randomize.
func (r *Repo) ActiveReviewerIDs(ctx context.Context, journalID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, activeReviewerIDsSQL, journalID); err != nil {
		return nil, fmt.Errorf("list active reviewer ids: %w", err)
	}
	return ids, nil
}

// GetReviewer returns a single reviewer assignment.
func (r *Repo) GetReviewer(ctx context.Context, journalID, userID uuid.UUID) (*domain.JournalReviewer, error) {
	sql, args, err := postgres.Builder.Select(reviewerColumns...).From("journal_reviewers").
		Where(sq.Eq{"journal_id": journalID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reviewer query: %w", err)
	}

	var row reviewerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("journal %s user %s: %w", journalID, userID, domain.ErrNotReviewer)
		}
		return nil, postgres.MapError(err, "journal_reviewer", userID)
	}

	rv := row.toDomain()
	return &rv, nil
}

// ListReviewers returns reviewer assignments matching the filter.
func (r *Repo) ListReviewers(ctx context.Context, f domain.ReviewerFilter) ([]domain.JournalReviewer, error) {
	query := postgres.Builder.Select(reviewerColumns...).From("journal_reviewers").
		OrderBy("assigned_at", "user_id")
	if f.JournalID != nil {
		query = query.Where(sq.Eq{"journal_id": *f.JournalID})
	}
	if f.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.ActiveOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	var rows []reviewerRow
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}

	reviewers := make([]domain.JournalReviewer, len(rows))
	for i, row := range rows {
		reviewers[i] = row.toDomain()
	}
	return reviewers, nil
}

// SetReviewerActive flips the activation flag and reports whether a row existed.
func (r *Repo) SetReviewerActive(ctx context.Context, journalID, userID uuid.UUID, active bool) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, setReviewerActiveSQL, journalID, userID, active)
	if err != nil {
		return false, postgres.MapError(err, "journal_reviewer", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateExpertise replaces the expertise tags and reports whether a row existed.
func (r *Repo) UpdateExpertise(ctx context.Context, journalID, userID uuid.UUID, expertise []string) (bool, error) {
	if expertise == nil {
		expertise = []string{}
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateExpertiseSQL, journalID, userID, expertise)
	if err != nil {
		return false, postgres.MapError(err, "journal_reviewer", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type editorRow struct {
	JournalID  uuid.UUID `db:"journal_id"`
	UserID     uuid.UUID `db:"user_id"`
	AssignedAt time.Time `db:"assigned_at"`
}

type reviewerRow struct {
	JournalID  uuid.UUID `db:"journal_id"`
	UserID     uuid.UUID `db:"user_id"`
	Expertise  []string  `db:"expertise"`
	IsActive   bool      `db:"is_active"`
	AssignedAt time.Time `db:"assigned_at"`
}

func (row reviewerRow) toDomain() domain.JournalReviewer {
	return domain.JournalReviewer{
		JournalID:  row.JournalID,
		UserID:     row.UserID,
		Expertise:  row.Expertise,
		IsActive:   row.IsActive,
		AssignedAt: row.AssignedAt,
	}
}
