package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/internal/service/review"
)

type reviewService interface {
	RequestReview(ctx context.Context, input review.RequestReviewInput) (*domain.Review, error)
	SubmitResult(ctx context.Context, input review.SubmitResultInput) (*domain.ReviewResult, error)
	UpdateStatus(ctx context.Context, input review.UpdateStatusInput) (*domain.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByPaper(ctx context.Context, paperID uuid.UUID, limit, offset int) ([]domain.Review, error)
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID, limit, offset int) ([]domain.Review, error)
	ListPendingForReviewer(ctx context.Context, reviewerID uuid.UUID, limit, offset int) ([]domain.Review, error)
	ListReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error)
}

// ReviewHandler serves the peer-review workflow endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type submitResultRequest struct {
	Recommendation string `json:"recommendation"`
	Comments       string `json:"comments"`
	OverallScore   int    `json:"overallScore"`
}

type updateStatusRequest struct {
	Status      string  `json:"status"`
	EditorNotes *string `json:"editorNotes"`
}

// Request handles POST /papers/{id}/reviews. Two reviewers are drawn from
// the paper's journal.
func (h *ReviewHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	paperID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.RequestReview(r.Context(), review.RequestReviewInput{
		PaperID: paperID, RequesterID: userID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeReview(w, r, http.StatusCreated, rv)
}

// Get handles GET /reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.GetReview(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeReview(w, r, http.StatusOK, rv)
}

// List handles GET /reviews with optional paperId, reviewerId, status and
// pendingFor filters.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		f   domain.ReviewFilter
		err error
	)
	if f.Limit, f.Offset, err = page(r); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if f.PaperID, err = queryUUID(r, "paperId"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if f.ReviewerID, err = queryUUID(r, "reviewerId"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if f.PendingFor, err = queryUUID(r, "pendingFor"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := domain.ReviewStatus(raw)
		if !st.IsValid() {
			handleError(h.log, w, r, domain.ErrInvalidReviewStatus)
			return
		}
		f.Status = &st
	}

	reviews, err := h.svc.ListReviews(r.Context(), f)
	h.writeReviews(w, r, reviews, err)
}

// ListByPaper handles GET /papers/{id}/reviews.
func (h *ReviewHandler) ListByPaper(w http.ResponseWriter, r *http.Request) {
	paperID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reviews, err := h.svc.ListByPaper(r.Context(), paperID, limit, offset)
	h.writeReviews(w, r, reviews, err)
}

// ListMine handles GET /users/me/reviews: every review the caller was assigned to.
func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.listForCaller(w, r, h.svc.ListByReviewer)
}

// ListPending handles GET /users/me/pending-reviews: open reviews still
// awaiting the caller's result.
func (h *ReviewHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listForCaller(w, r, h.svc.ListPendingForReviewer)
}

func (h *ReviewHandler) listForCaller(
	w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context, reviewerID uuid.UUID, limit, offset int) ([]domain.Review, error),
) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reviews, err := list(r.Context(), userID, limit, offset)
	h.writeReviews(w, r, reviews, err)
}

// SubmitResult handles POST /reviews/{id}/results. The caller must be one
// of the two assigned reviewers.
func (h *ReviewHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	reviewID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req submitResultRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SubmitResult(r.Context(), review.SubmitResultInput{
		ReviewID:       reviewID,
		ReviewerID:     userID,
		Recommendation: domain.Recommendation(req.Recommendation),
		Comments:       req.Comments,
		OverallScore:   req.OverallScore,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResultResponse(res))
}

// UpdateStatus handles PATCH /reviews/{id}/status. Editor-only.
func (h *ReviewHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	reviewID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.UpdateStatus(r.Context(), review.UpdateStatusInput{
		ReviewID:    reviewID,
		EditorID:    userID,
		Status:      domain.ReviewStatus(req.Status),
		EditorNotes: req.EditorNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeReview(w, r, http.StatusOK, rv)
}

func (h *ReviewHandler) writeReview(w http.ResponseWriter, r *http.Request, status int, rv *domain.Review) {
	resp, err := toReviewResponse(r.Context(), rv)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, resp)
}

func (h *ReviewHandler) writeReviews(w http.ResponseWriter, r *http.Request, reviews []domain.Review, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out, err := toReviewResponses(r.Context(), reviews)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
