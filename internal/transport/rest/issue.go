package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/issue"
)

type issueService interface {
	CreateIssue(ctx context.Context, input issue.CreateIssueInput) (*domain.Issue, error)
	UpdateIssue(ctx context.Context, input issue.UpdateIssueInput) (*domain.Issue, error)
	DeleteIssue(ctx context.Context, id uuid.UUID) error
	GetIssue(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	ListIssues(ctx context.Context, journalID *uuid.UUID, limit, offset int) ([]domain.Issue, error)
}

// IssueHandler serves issue composition endpoints. Mutations are limited to
// the journal's editors.
type IssueHandler struct {
	svc   issueService
	roles editorChecker
	log   *slog.Logger
}

// NewIssueHandler creates an IssueHandler.
func NewIssueHandler(svc issueService, roles editorChecker, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, roles: roles, log: logger.With("handler", "issue")}
}

type createIssueRequest struct {
	Number          int         `json:"number"`
	Volume          int         `json:"volume"`
	PublicationDate *time.Time  `json:"publicationDate"`
	PaperIDs        []uuid.UUID `json:"paperIds"`
}

type updateIssueRequest struct {
	JournalID *uuid.UUID  `json:"journalId"`
	Number    int         `json:"number"`
	Volume    int         `json:"volume"`
	PaperIDs  []uuid.UUID `json:"paperIds"`
}

// Create handles POST /journals/{id}/issues.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := requireEditor(r.Context(), h.roles, r, journalID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	is, err := h.svc.CreateIssue(r.Context(), issue.CreateIssueInput{
		JournalID:       journalID,
		Number:          req.Number,
		Volume:          req.Volume,
		PublicationDate: req.PublicationDate,
		PaperIDs:        req.PaperIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIssueResponse(is))
}

// Get handles GET /issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	is, err := h.svc.GetIssue(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssueResponse(is))
}

// List handles GET /issues?journalId= and GET /journals/{id}/issues.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	journalID, err := queryUUID(r, "journalId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if r.PathValue("id") != "" {
		id, err := pathUUID(r, "id")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		journalID = &id
	}
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	issues, err := h.svc.ListIssues(r.Context(), journalID, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]issueResponse, len(issues))
	for i := range issues {
		out[i] = toIssueResponse(&issues[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /issues/{id}. The paper list replaces the current one.
func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.authorize(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	is, err := h.svc.UpdateIssue(r.Context(), issue.UpdateIssueInput{
		ID:        id,
		JournalID: req.JournalID,
		Number:    req.Number,
		Volume:    req.Volume,
		PaperIDs:  req.PaperIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssueResponse(is))
}

// Delete handles DELETE /issues/{id}. Member papers return to approved.
func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.authorize(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteIssue(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorize resolves {id} to an issue and checks the caller edits its journal.
func (h *IssueHandler) authorize(r *http.Request) (uuid.UUID, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, err
	}
	is, err := h.svc.GetIssue(r.Context(), id)
	if err != nil {
		return uuid.Nil, err
	}
	if err := requireEditor(r.Context(), h.roles, r, is.JournalID); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
