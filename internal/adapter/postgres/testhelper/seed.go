package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarsojabbes/science/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a researcher account with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "user-" + suffix + "@example.org",
		PasswordHash: "not-a-real-hash",
		Institution:  "Test University",
		Roles:        []domain.UserRole{domain.UserRoleResearcher},
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, institution, roles, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Institution,
		[]string{string(domain.UserRoleResearcher)}, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedJournal creates a journal with a unique ISSN-like key.
func SeedJournal(t *testing.T, pool *pgxpool.Pool) domain.Journal {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	j := domain.Journal{
		ID:        uuid.New(),
		Name:      "Journal " + suffix,
		ISSN:      "seed-" + suffix,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO journals (id, name, issn, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		j.ID, j.Name, j.ISSN, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournal: %v", err)
	}

	return j
}

// SeedEditor makes userID an editor of journalID.
func SeedEditor(t *testing.T, pool *pgxpool.Pool, journalID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO journal_editors (journal_id, user_id) VALUES ($1, $2)`,
		journalID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEditor: %v", err)
	}
}

// SeedReviewer creates a fresh user and makes them a reviewer of journalID.
func SeedReviewer(t *testing.T, pool *pgxpool.Pool, journalID uuid.UUID, active bool) domain.User {
	t.Helper()

	user := SeedUser(t, pool)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO journal_reviewers (journal_id, user_id, expertise, is_active) VALUES ($1, $2, $3, $4)`,
		journalID, user.ID, []string{"testing"}, active,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewer: %v", err)
	}

	return user
}

// SeedPaper creates a paper in the given status authored by researcherID.
func SeedPaper(t *testing.T, pool *pgxpool.Pool, journalID, researcherID uuid.UUID, status domain.PaperStatus) domain.Paper {
	t.Helper()
	ctx := context.Background()

	ts := now()
	p := domain.Paper{
		ID:             uuid.New(),
		Name:           "Paper " + uniqueSuffix(),
		URL:            "https://papers.example.org/" + uniqueSuffix(),
		JournalID:      journalID,
		Status:         status,
		SubmissionDate: ts,
		ResearcherIDs:  []uuid.UUID{researcherID},
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO papers (id, name, url, journal_id, status, submission_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.URL, p.JournalID, string(p.Status), p.SubmissionDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPaper insert paper: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO paper_researchers (paper_id, user_id, position) VALUES ($1, $2, 0)`,
		p.ID, researcherID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPaper insert researcher: %v", err)
	}

	return p
}
