package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/journal"
)

type journalService interface {
	CreateJournal(ctx context.Context, input journal.CreateJournalInput) (*domain.Journal, error)
	GetJournal(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
	ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, error)
}

// JournalHandler serves journal endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createJournalRequest struct {
	Name string `json:"name"`
	ISSN string `json:"issn"`
}

// Create handles POST /journals. The caller becomes the first editor.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createJournalRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	j, err := h.svc.CreateJournal(r.Context(), journal.CreateJournalInput{
		Name: req.Name, ISSN: req.ISSN, CreatorID: userID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalResponse(j))
}

// Get handles GET /journals/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	j, err := h.svc.GetJournal(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toJournalResponse(j))
}

// List handles GET /journals.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	journals, err := h.svc.ListJournals(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]journalResponse, len(journals))
	for i := range journals {
		out[i] = toJournalResponse(&journals[i])
	}
	writeJSON(w, http.StatusOK, out)
}
