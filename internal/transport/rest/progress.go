package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
)

type progressService interface {
	GetProgress(ctx context.Context) (*domain.Progress, error)
	SetTimezone(ctx context.Context, input progress.SetTimezoneInput) (*domain.Progress, error)
	RecordActivity(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error)
	ListActivities(ctx context.Context, input progress.ListActivitiesInput) ([]domain.Activity, error)
	RecordReading(ctx context.Context, input progress.RecordReadingInput) (*progress.ReadingResult, error)
	UpdateReading(ctx context.Context, input progress.UpdateReadingInput) (*progress.ReadingResult, error)
	ListReadingHistory(ctx context.Context, input progress.ListHistoryInput) ([]domain.ReadingRecord, error)
	RecordQuizResult(ctx context.Context, input progress.RecordQuizInput) (*progress.QuizResultOutcome, error)
	ListQuizResults(ctx context.Context, input progress.ListHistoryInput) ([]domain.QuizResult, error)
}

// ProgressHandler serves XP, streak, activity, reading and quiz endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type timezoneRequest struct {
	Timezone string `json:"timezone"`
}

type activityRequest struct {
	Type     domain.ActivityType `json:"type"`
	Metadata map[string]any      `json:"metadata"`
}

// Get handles GET /api/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*p))
}

// SetTimezone handles PUT /api/progress/timezone.
func (h *ProgressHandler) SetTimezone(w http.ResponseWriter, r *http.Request) {
	var req timezoneRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.SetTimezone(r.Context(), progress.SetTimezoneInput{Timezone: req.Timezone})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*p))
}

// RecordActivity handles POST /api/progress/activities.
func (h *ProgressHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.RecordActivity(r.Context(), progress.RecordActivityInput{
		Type:     req.Type,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordActivityResponse{
		Activity: toActivityResponse(res.Activity),
		Progress: toProgressResponse(res.Progress),
	})
}

// ListActivities handles GET /api/progress/activities?limit=.
func (h *ProgressHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	acts, err := h.svc.ListActivities(r.Context(), progress.ListActivitiesInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]activityResponse, 0, len(acts))
	for _, a := range acts {
		items = append(items, toActivityResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
