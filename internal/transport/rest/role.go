package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/role"
)

type editorChecker interface {
	IsEditorOf(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
}

type roleService interface {
	editorChecker
	AddEditor(ctx context.Context, input role.AssignmentInput) (*domain.JournalEditor, error)
	RemoveEditor(ctx context.Context, input role.AssignmentInput) error
	ListEditors(ctx context.Context, journalID uuid.UUID) ([]domain.JournalEditor, error)

	AddReviewer(ctx context.Context, input role.AddReviewerInput) (*domain.JournalReviewer, error)
	RemoveReviewer(ctx context.Context, input role.AssignmentInput) error
	ActivateReviewer(ctx context.Context, input role.AssignmentInput) error
	DeactivateReviewer(ctx context.Context, input role.AssignmentInput) error
	UpdateExpertise(ctx context.Context, input role.UpdateExpertiseInput) (*domain.JournalReviewer, error)
	GetReviewer(ctx context.Context, journalID, userID uuid.UUID) (*domain.JournalReviewer, error)
	ListReviewers(ctx context.Context, journalID uuid.UUID) ([]domain.JournalReviewer, error)
	ListReviewerJournals(ctx context.Context, userID uuid.UUID) ([]domain.JournalReviewer, error)
}

// requireEditor fails with ErrEditorRequired unless the caller edits journalID.
func requireEditor(ctx context.Context, roles editorChecker, r *http.Request, journalID uuid.UUID) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}
	ok, err := roles.IsEditorOf(ctx, userID, journalID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrEditorRequired
	}
	return nil
}

// RoleHandler serves editor and reviewer assignment endpoints.
type RoleHandler struct {
	svc roleService
	log *slog.Logger
}

// NewRoleHandler creates a RoleHandler.
func NewRoleHandler(svc roleService, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{svc: svc, log: logger.With("handler", "role")}
}

type addEditorRequest struct {
	UserID uuid.UUID `json:"userId"`
}

type addReviewerRequest struct {
	UserID    uuid.UUID `json:"userId"`
	Expertise []string  `json:"expertise"`
}

type expertiseRequest struct {
	Expertise []string `json:"expertise"`
}

// assignment reads {id} and {userId} and checks that the caller edits the journal.
func (h *RoleHandler) assignment(r *http.Request) (role.AssignmentInput, error) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		return role.AssignmentInput{}, err
	}
	userID, err := pathUUID(r, "userId")
	if err != nil {
		return role.AssignmentInput{}, err
	}
	if err := requireEditor(r.Context(), h.svc, r, journalID); err != nil {
		return role.AssignmentInput{}, err
	}
	return role.AssignmentInput{JournalID: journalID, UserID: userID}, nil
}

// ListEditors handles GET /journals/{id}/editors.
func (h *RoleHandler) ListEditors(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	editors, err := h.svc.ListEditors(r.Context(), journalID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]editorResponse, len(editors))
	for i := range editors {
		out[i] = toEditorResponse(&editors[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// AddEditor handles POST /journals/{id}/editors.
func (h *RoleHandler) AddEditor(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := requireEditor(r.Context(), h.svc, r, journalID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addEditorRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.AddEditor(r.Context(), role.AssignmentInput{JournalID: journalID, UserID: req.UserID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEditorResponse(e))
}

// RemoveEditor handles DELETE /journals/{id}/editors/{userId}.
func (h *RoleHandler) RemoveEditor(w http.ResponseWriter, r *http.Request) {
	input, err := h.assignment(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveEditor(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListReviewers handles GET /journals/{id}/reviewers. Only active reviewers are listed.
func (h *RoleHandler) ListReviewers(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reviewers, err := h.svc.ListReviewers(r.Context(), journalID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeReviewers(w, http.StatusOK, reviewers)
}

// GetReviewer handles GET /journals/{id}/reviewers/{userId}.
func (h *RoleHandler) GetReviewer(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	userID, err := pathUUID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.GetReviewer(r.Context(), journalID, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewerResponse(rv))
}

// AddReviewer handles POST /journals/{id}/reviewers.
func (h *RoleHandler) AddReviewer(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := requireEditor(r.Context(), h.svc, r, journalID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addReviewerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.AddReviewer(r.Context(), role.AddReviewerInput{
		JournalID: journalID, UserID: req.UserID, Expertise: req.Expertise,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewerResponse(rv))
}

// RemoveReviewer handles DELETE /journals/{id}/reviewers/{userId}.
func (h *RoleHandler) RemoveReviewer(w http.ResponseWriter, r *http.Request) {
	input, err := h.assignment(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveReviewer(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActivateReviewer handles POST /journals/{id}/reviewers/{userId}/activate.
func (h *RoleHandler) ActivateReviewer(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.svc.ActivateReviewer)
}

// DeactivateReviewer handles POST /journals/{id}/reviewers/{userId}/deactivate.
func (h *RoleHandler) DeactivateReviewer(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.svc.DeactivateReviewer)
}

func (h *RoleHandler) setActive(w http.ResponseWriter, r *http.Request, apply func(context.Context, role.AssignmentInput) error) {
	input, err := h.assignment(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := apply(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.GetReviewer(r.Context(), input.JournalID, input.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewerResponse(rv))
}

// UpdateExpertise handles PUT /journals/{id}/reviewers/{userId}/expertise.
func (h *RoleHandler) UpdateExpertise(w http.ResponseWriter, r *http.Request) {
	input, err := h.assignment(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req expertiseRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.UpdateExpertise(r.Context(), role.UpdateExpertiseInput{
		JournalID: input.JournalID, UserID: input.UserID, Expertise: req.Expertise,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewerResponse(rv))
}

// MyReviewerJournals handles GET /users/me/reviewer-journals.
func (h *RoleHandler) MyReviewerJournals(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reviewers, err := h.svc.ListReviewerJournals(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeReviewers(w, http.StatusOK, reviewers)
}

func (h *RoleHandler) writeReviewers(w http.ResponseWriter, status int, reviewers []domain.JournalReviewer) {
	out := make([]reviewerResponse, len(reviewers))
	for i := range reviewers {
		out[i] = toReviewerResponse(&reviewers[i])
	}
	writeJSON(w, status, out)
}
