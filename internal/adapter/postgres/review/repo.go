// Package review implements the Review and ReviewResult repository using PostgreSQL.
package review

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

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var reviewColumns = []string{
	"r.id", "r.paper_id", "r.requester_id", "r.first_reviewer_id", "r.second_reviewer_id",
	"r.status", "r.request_date", "r.assigned_date", "r.completed_date", "r.final_decision",
	"r.editor_notes", "r.created_at", "r.updated_at",
}

const resultColumns = `id, review_id, reviewer_id, recommendation, comments, overall_score,
is_submitted, result_date, created_at, updated_at`

const insertReviewSQL = `
INSERT INTO reviews (id, paper_id, requester_id, first_reviewer_id, second_reviewer_id,
                     status, request_date, assigned_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertResultSQL = `
INSERT INTO review_results (id, review_id, reviewer_id, recommendation, comments, overall_score,
                            is_submitted, result_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + resultColumns

const resultsByReviewSQL = `
SELECT ` + resultColumns + `
FROM review_results
WHERE review_id = $1
ORDER BY created_at, id`

const resultByReviewerSQL = `
SELECT ` + resultColumns + `
FROM review_results
WHERE review_id = $1 AND reviewer_id = $2`

// The is_submitted guard makes submission a compare-and-swap: a second
// writer matches no row.
const submitResultSQL = `
UPDATE review_results
SET recommendation = $2, comments = $3, overall_score = $4,
    is_submitted = TRUE, result_date = $5, updated_at = $5
WHERE id = $1 AND NOT is_submitted
RETURNING ` + resultColumns

const completeReviewSQL = `
UPDATE reviews
SET status = 'completed', final_decision = $2, completed_date = $3, updated_at = $3
WHERE id = $1 AND status IN ('pending', 'in_progress')`

const updateReviewStatusSQL = `
UPDATE reviews SET status = $2, editor_notes = $3, updated_at = now() WHERE id = $1`

const hasOpenReviewSQL = `
SELECT EXISTS(SELECT 1 FROM reviews WHERE paper_id = $1 AND status IN ('pending', 'in_progress'))`

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

// Create inserts a review row. Placeholders are created separately with
// CreateResult inside the same transaction.
func (r *Repo) Create(ctx context.Context, rv *domain.Review) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertReviewSQL,
		rv.ID, rv.PaperID, rv.RequesterID, rv.FirstReviewerID, rv.SecondReviewerID,
		string(rv.Status), rv.RequestDate, rv.AssignedDate, rv.CreatedAt, rv.UpdatedAt,
	)
	if postgres.IsUniqueViolation(err, "ux_reviews_open_per_paper") {
		return fmt.Errorf("paper %s: %w", rv.PaperID, domain.ErrInvalidPaperState)
	}
	if err != nil {
		return postgres.MapError(err, "review", rv.ID)
	}
	return nil
}

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return r.getOne(ctx, id, false)
}

// LockByID returns a review and holds a row lock on it until the surrounding
// transaction ends. Concurrent submissions for the same review queue here.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return r.getOne(ctx, id, true)
}

// Complete records the final decision of an open review.
// Returns domain.ErrReviewClosed if the review is no longer open.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, decision domain.FinalDecision, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, completeReviewSQL, id, string(decision), at)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, domain.ErrReviewClosed)
	}
	return nil
}

// UpdateStatus overwrites status and editor notes.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus, notes *string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateReviewStatusSQL, id, string(status), notes)
	if postgres.IsUniqueViolation(err, "ux_reviews_open_per_paper") {
		return fmt.Errorf("review %s: %w", id, domain.ErrPaperHasOpenReview)
	}
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, domain.ErrReviewNotFound)
	}
	return nil
}

// HasOpenReview reports whether the paper has a pending or in-progress review.
func (r *Repo) HasOpenReview(ctx context.Context, paperID uuid.UUID) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, hasOpenReviewSQL, paperID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "review", paperID)
	}
	return ok, nil
}

// List returns reviews matching the filter, newest request first.
// ReviewerID matches either reviewer slot.
func (r *Repo) List(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	query := postgres.Builder.Select(reviewColumns...).From("reviews r").
		OrderBy("r.request_date DESC", "r.id")

	if f.PaperID != nil {
		query = query.Where(sq.Eq{"r.paper_id": *f.PaperID})
	}
	if f.ReviewerID != nil {
		query = query.Where(sq.Or{
			sq.Eq{"r.first_reviewer_id": *f.ReviewerID},
			sq.Eq{"r.second_reviewer_id": *f.ReviewerID},
		})
	}
	if f.Status != nil {
		query = query.Where(sq.Eq{"r.status": string(*f.Status)})
	}
	if f.PendingFor != nil {
		query = query.
			Join("review_results rr ON rr.review_id = r.id").
			Where(sq.Eq{
				"rr.reviewer_id":  *f.PendingFor,
				"rr.is_submitted": false,
				"r.status":        []string{string(domain.ReviewStatusPending), string(domain.ReviewStatusInProgress)},
			})
	}
	query = postgres.Page(query, domain.ClampLimit(f.Limit), f.Offset)

	var rows []reviewRow
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := make([]domain.Review, len(rows))
	for i, row := range rows {
		reviews[i] = row.toDomain()
	}
	return reviews, nil
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

// CreateResult inserts a result row.
func (r *Repo) CreateResult(ctx context.Context, res *domain.ReviewResult) (*domain.ReviewResult, error) {
	now := res.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var row resultRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, insertResultSQL,
		res.ID, res.ReviewID, res.ReviewerID, string(res.Recommendation), res.Comments,
		res.OverallScore, res.IsSubmitted, res.ResultDate, now, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review_result", res.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Results returns every result row of a review.
func (r *Repo) Results(ctx context.Context, reviewID uuid.UUID) ([]domain.ReviewResult, error) {
	var rows []resultRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, resultsByReviewSQL, reviewID); err != nil {
		return nil, fmt.Errorf("list review results: %w", err)
	}

	results := make([]domain.ReviewResult, len(rows))
	for i, row := range rows {
		results[i] = row.toDomain()
	}
	return results, nil
}

// GetResult returns the result row of one reviewer.
// Returns domain.ErrNotFound when no row exists.
func (r *Repo) GetResult(ctx context.Context, reviewID, reviewerID uuid.UUID) (*domain.ReviewResult, error) {
	var row resultRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, resultByReviewerSQL, reviewID, reviewerID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review_result %s/%s: %w", reviewID, reviewerID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "review_result", reviewID)
	}

	res := row.toDomain()
	return &res, nil
}

// SubmitResult marks a placeholder as submitted with the reviewer's verdict.
// Returns domain.ErrAlreadySubmitted if the row was already submitted.
func (r *Repo) SubmitResult(ctx context.Context, res *domain.ReviewResult) (*domain.ReviewResult, error) {
	var row resultRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, submitResultSQL,
		res.ID, string(res.Recommendation), res.Comments, res.OverallScore, res.ResultDate,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review_result %s: %w", res.ID, domain.ErrAlreadySubmitted)
		}
		return nil, postgres.MapError(err, "review_result", res.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, lock bool) (*domain.Review, error) {
	query := postgres.Builder.Select(reviewColumns...).From("reviews r").Where(sq.Eq{"r.id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review query: %w", err)
	}

	var row reviewRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review %s: %w", id, domain.ErrReviewNotFound)
		}
		return nil, postgres.MapError(err, "review", id)
	}

	rv := row.toDomain()
	return &rv, nil
}

type reviewRow struct {
	ID               uuid.UUID  `db:"id"`
	PaperID          uuid.UUID  `db:"paper_id"`
	RequesterID      *uuid.UUID `db:"requester_id"`
	FirstReviewerID  *uuid.UUID `db:"first_reviewer_id"`
	SecondReviewerID *uuid.UUID `db:"second_reviewer_id"`
	Status           string     `db:"status"`
	RequestDate      time.Time  `db:"request_date"`
	AssignedDate     time.Time  `db:"assigned_date"`
	CompletedDate    *time.Time `db:"completed_date"`
	FinalDecision    *string    `db:"final_decision"`
	EditorNotes      *string    `db:"editor_notes"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (row reviewRow) toDomain() domain.Review {
	rv := domain.Review{
		ID:               row.ID,
		PaperID:          row.PaperID,
		RequesterID:      derefUUID(row.RequesterID),
		FirstReviewerID:  derefUUID(row.FirstReviewerID),
		SecondReviewerID: derefUUID(row.SecondReviewerID),
		Status:           domain.ReviewStatus(row.Status),
		RequestDate:      row.RequestDate,
		AssignedDate:     row.AssignedDate,
		CompletedDate:    row.CompletedDate,
		EditorNotes:      row.EditorNotes,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if row.FinalDecision != nil {
		d := domain.FinalDecision(*row.FinalDecision)
		rv.FinalDecision = &d
	}
	return rv
}

type resultRow struct {
	ID             uuid.UUID  `db:"id"`
	ReviewID       uuid.UUID  `db:"review_id"`
	ReviewerID     *uuid.UUID `db:"reviewer_id"`
	Recommendation string     `db:"recommendation"`
	Comments       string     `db:"comments"`
	OverallScore   int        `db:"overall_score"`
	IsSubmitted    bool       `db:"is_submitted"`
	ResultDate     *time.Time `db:"result_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (row resultRow) toDomain() domain.ReviewResult {
	return domain.ReviewResult{
		ID:             row.ID,
		ReviewID:       row.ReviewID,
		ReviewerID:     derefUUID(row.ReviewerID),
		Recommendation: domain.Recommendation(row.Recommendation),
		Comments:       row.Comments,
		OverallScore:   row.OverallScore,
		IsSubmitted:    row.IsSubmitted,
		ResultDate:     row.ResultDate,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// derefUUID maps a NULL reference (deleted account) to uuid.Nil.
func derefUUID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
