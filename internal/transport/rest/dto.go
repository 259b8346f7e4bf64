package rest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/transport/dataloader"
)

type userResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Institution string    `json:"institution"`
	ORCID       *string   `json:"orcid,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = r.String()
	}
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Institution: u.Institution,
		ORCID:       u.ORCID,
		Roles:       roles,
		CreatedAt:   u.CreatedAt,
	}
}

// personRef is the public view of a user embedded in other resources.
type personRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name,omitempty"`
	Institution string    `json:"institution,omitempty"`
}

// resolvePeople batches the user lookup through the request's dataloader.
// Without a loader, or for deleted users, only the id is returned.
func resolvePeople(ctx context.Context, ids []uuid.UUID) ([]personRef, error) {
	refs := make([]personRef, len(ids))
	for i, id := range ids {
		refs[i] = personRef{ID: id}
	}
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(ids) == 0 {
		return refs, nil
	}
	users, err := loaders.Users(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range refs {
		if u := users[refs[i].ID]; u != nil {
			refs[i].Name = u.Name
			refs[i].Institution = u.Institution
		}
	}
	return refs, nil
}

type journalResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ISSN      string    `json:"issn"`
	CreatedAt time.Time `json:"createdAt"`
}

func toJournalResponse(j *domain.Journal) journalResponse {
	return journalResponse{ID: j.ID, Name: j.Name, ISSN: j.ISSN, CreatedAt: j.CreatedAt}
}

type editorResponse struct {
	JournalID  uuid.UUID `json:"journalId"`
	UserID     uuid.UUID `json:"userId"`
	AssignedAt time.Time `json:"assignedAt"`
}

func toEditorResponse(e *domain.JournalEditor) editorResponse {
	return editorResponse{JournalID: e.JournalID, UserID: e.UserID, AssignedAt: e.AssignedAt}
}

type reviewerResponse struct {
	JournalID  uuid.UUID `json:"journalId"`
	UserID     uuid.UUID `json:"userId"`
	Expertise  []string  `json:"expertise"`
	IsActive   bool      `json:"isActive"`
	AssignedAt time.Time `json:"assignedAt"`
}

func toReviewerResponse(rv *domain.JournalReviewer) reviewerResponse {
	expertise := rv.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return reviewerResponse{
		JournalID:  rv.JournalID,
		UserID:     rv.UserID,
		Expertise:  expertise,
		IsActive:   rv.IsActive,
		AssignedAt: rv.AssignedAt,
	}
}

type paperResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	URL            string      `json:"url"`
	JournalID      uuid.UUID   `json:"journalId"`
	IssueID        *uuid.UUID  `json:"issueId"`
	Status         string      `json:"status"`
	SubmissionDate time.Time   `json:"submissionDate"`
	PublishedDate  *time.Time  `json:"publishedDate"`
	Researchers    []personRef `json:"researchers"`
}

func toPaperResponse(ctx context.Context, p *domain.Paper) (paperResponse, error) {
	researchers, err := resolvePeople(ctx, p.ResearcherIDs)
	if err != nil {
		return paperResponse{}, err
	}
	return paperResponse{
		ID:             p.ID,
		Name:           p.Name,
		URL:            p.URL,
		JournalID:      p.JournalID,
		IssueID:        p.IssueID,
		Status:         p.Status.String(),
		SubmissionDate: p.SubmissionDate,
		PublishedDate:  p.PublishedDate,
		Researchers:    researchers,
	}, nil
}

type resultResponse struct {
	ID             uuid.UUID  `json:"id"`
	ReviewID       uuid.UUID  `json:"reviewId"`
	ReviewerID     uuid.UUID  `json:"reviewerId"`
	Recommendation string     `json:"recommendation"`
	Comments       string     `json:"comments"`
	OverallScore   int        `json:"overallScore"`
	IsSubmitted    bool       `json:"isSubmitted"`
	ResultDate     *time.Time `json:"resultDate"`
}

func toResultResponse(res *domain.ReviewResult) resultResponse {
	return resultResponse{
		ID:             res.ID,
		ReviewID:       res.ReviewID,
		ReviewerID:     res.ReviewerID,
		Recommendation: res.Recommendation.String(),
		Comments:       res.Comments,
		OverallScore:   res.OverallScore,
		IsSubmitted:    res.IsSubmitted,
		ResultDate:     res.ResultDate,
	}
}

type reviewResponse struct {
	ID            uuid.UUID        `json:"id"`
	PaperID       uuid.UUID        `json:"paperId"`
	Requester     personRef        `json:"requester"`
	Reviewers     []personRef      `json:"reviewers"`
	Status        string           `json:"status"`
	RequestDate   time.Time        `json:"requestDate"`
	AssignedDate  time.Time        `json:"assignedDate"`
	CompletedDate *time.Time       `json:"completedDate"`
	FinalDecision *string          `json:"finalDecision"`
	EditorNotes   *string          `json:"editorNotes"`
	Results       []resultResponse `json:"results,omitempty"`
}

func toReviewResponse(ctx context.Context, rv *domain.Review) (reviewResponse, error) {
	people, err := resolvePeople(ctx, []uuid.UUID{rv.RequesterID, rv.FirstReviewerID, rv.SecondReviewerID})
	if err != nil {
		return reviewResponse{}, err
	}

	var decision *string
	if rv.FinalDecision != nil {
		d := rv.FinalDecision.String()
		decision = &d
	}

	resp := reviewResponse{
		ID:            rv.ID,
		PaperID:       rv.PaperID,
		Requester:     people[0],
		Reviewers:     people[1:],
		Status:        rv.Status.String(),
		RequestDate:   rv.RequestDate,
		AssignedDate:  rv.AssignedDate,
		CompletedDate: rv.CompletedDate,
		FinalDecision: decision,
		EditorNotes:   rv.EditorNotes,
	}
	for i := range rv.Results {
		resp.Results = append(resp.Results, toResultResponse(&rv.Results[i]))
	}
	return resp, nil
}

func toReviewResponses(ctx context.Context, reviews []domain.Review) ([]reviewResponse, error) {
	return renderAll(ctx, reviews, toReviewResponse)
}

func toPaperResponses(ctx context.Context, papers []domain.Paper) ([]paperResponse, error) {
	return renderAll(ctx, papers, toPaperResponse)
}

// renderAll converts items concurrently so the dataloader can collect every
// user lookup of a page into a single batch.
func renderAll[T, R any](ctx context.Context, items []T, render func(context.Context, *T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	g, ctx := errgroup.WithContext(ctx)
	for i := range items {
		g.Go(func() error {
			resp, err := render(ctx, &items[i])
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type issueResponse struct {
	ID              uuid.UUID   `json:"id"`
	JournalID       uuid.UUID   `json:"journalId"`
	Number          int         `json:"number"`
	Volume          int         `json:"volume"`
	PublicationDate time.Time   `json:"publicationDate"`
	PaperIDs        []uuid.UUID `json:"paperIds"`
}

func toIssueResponse(is *domain.Issue) issueResponse {
	ids := is.PaperIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return issueResponse{
		ID:              is.ID,
		JournalID:       is.JournalID,
		Number:          is.Number,
		Volume:          is.Volume,
		PublicationDate: is.PublicationDate,
		PaperIDs:        ids,
	}
}
