package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/paper"
)

type paperService interface {
	CreatePaper(ctx context.Context, input paper.CreatePaperInput) (*domain.Paper, error)
	UpdatePaper(ctx context.Context, input paper.UpdatePaperInput) (*domain.Paper, error)
	DeletePaper(ctx context.Context, id, actorID uuid.UUID) error
	GetPaper(ctx context.Context, id uuid.UUID) (*domain.Paper, error)
	ListPapers(ctx context.Context, input paper.ListPapersInput) ([]domain.Paper, error)
}

// PaperHandler serves paper submission endpoints.
type PaperHandler struct {
	svc paperService
	log *slog.Logger
}

// NewPaperHandler creates a PaperHandler.
func NewPaperHandler(svc paperService, logger *slog.Logger) *PaperHandler {
	return &PaperHandler{svc: svc, log: logger.With("handler", "paper")}
}

type createPaperRequest struct {
	JournalID     uuid.UUID   `json:"journalId"`
	Name          string      `json:"name"`
	URL           string      `json:"url"`
	ResearcherIDs []uuid.UUID `json:"researcherIds"`
}

type updatePaperRequest struct {
	Name          *string     `json:"name"`
	URL           *string     `json:"url"`
	ResearcherIDs []uuid.UUID `json:"researcherIds"`
}

// Create handles POST /papers. When researcherIds is omitted the caller is
// the sole author.
func (h *PaperHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createPaperRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.ResearcherIDs == nil {
		req.ResearcherIDs = []uuid.UUID{userID}
	}

	p, err := h.svc.CreatePaper(r.Context(), paper.CreatePaperInput{
		JournalID:     req.JournalID,
		Name:          req.Name,
		URL:           req.URL,
		ResearcherIDs: req.ResearcherIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePaper(w, r, http.StatusCreated, p)
}

// Get handles GET /papers/{id}.
func (h *PaperHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetPaper(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePaper(w, r, http.StatusOK, p)
}

// List handles GET /papers with optional journalId, issueId, researcherId,
// status and q filters.
func (h *PaperHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listPapersInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	papers, err := h.svc.ListPapers(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := toPaperResponses(r.Context(), papers)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ListMine handles GET /users/me/papers.
func (h *PaperHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input, err := listPapersInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.ResearcherID = &userID

	papers, err := h.svc.ListPapers(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := toPaperResponses(r.Context(), papers)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /papers/{id}.
func (h *PaperHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updatePaperRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdatePaper(r.Context(), paper.UpdatePaperInput{
		ID:            id,
		ActorID:       userID,
		Name:          req.Name,
		URL:           req.URL,
		ResearcherIDs: req.ResearcherIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePaper(w, r, http.StatusOK, p)
}

// Delete handles DELETE /papers/{id}.
func (h *PaperHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeletePaper(r.Context(), id, userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PaperHandler) writePaper(w http.ResponseWriter, r *http.Request, status int, p *domain.Paper) {
	resp, err := toPaperResponse(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, resp)
}

func listPapersInput(r *http.Request) (paper.ListPapersInput, error) {
	var (
		input paper.ListPapersInput
		err   error
	)
	if input.Limit, input.Offset, err = page(r); err != nil {
		return input, err
	}
	if input.JournalID, err = queryUUID(r, "journalId"); err != nil {
		return input, err
	}
	if input.IssueID, err = queryUUID(r, "issueId"); err != nil {
		return input, err
	}
	if input.ResearcherID, err = queryUUID(r, "researcherId"); err != nil {
		return input, err
	}
	q := r.URL.Query()
	if raw := q.Get("status"); raw != "" {
		st := domain.PaperStatus(raw)
		input.Status = &st
	}
	input.Search = q.Get("q")
	return input, nil
}
