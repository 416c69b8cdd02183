package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/study"
)

type studyService interface {
	GetReviewQueue(ctx context.Context, input study.GetQueueInput) ([]domain.Word, error)
	ReviewWord(ctx context.Context, input study.ReviewWordInput) (*study.ReviewResult, error)
	UndoReview(ctx context.Context, input study.UndoReviewInput) (*domain.Word, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
}

// StudyHandler serves the review-session endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type reviewRequest struct {
	WordID     uuid.UUID            `json:"word_id"`
	Quality    *int                 `json:"quality"`
	Button     *domain.ReviewButton `json:"button"`
	DurationMs *int                 `json:"duration_ms"`
}

type undoRequest struct {
	WordID uuid.UUID `json:"word_id"`
}

// Queue handles GET /api/study/queue?limit=.
func (h *StudyHandler) Queue(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	words, err := h.svc.GetReviewQueue(r.Context(), study.GetQueueInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordListResponse{Items: toWordResponses(words), Total: len(words)})
}

// Review handles POST /api/study/reviews.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.ReviewWord(r.Context(), study.ReviewWordInput{
		WordID:     req.WordID,
		Quality:    req.Quality,
		Button:     req.Button,
		DurationMs: req.DurationMs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		Word:     toWordResponse(res.Word),
		Log:      toReviewLogResponse(res.Log),
		XPEarned: res.XPEarned,
		Progress: toProgressResponse(res.Progress),
	})
}

// Undo handles POST /api/study/reviews/undo.
func (h *StudyHandler) Undo(w http.ResponseWriter, r *http.Request) {
	var req undoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.svc.UndoReview(r.Context(), study.UndoReviewInput{WordID: req.WordID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Dashboard handles GET /api/study/dashboard.
func (h *StudyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalWords:    d.TotalWords,
		DueCount:      d.DueCount,
		ReviewedToday: d.ReviewedToday,
		XP:            d.XP,
		Level:         d.Level,
		Streak:        d.Streak,
		LongestStreak: d.LongestStreak,
	})
}
