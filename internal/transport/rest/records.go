package rest

import (
	"net/http"

	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
)

type recordReadingRequest struct {
	ArticleID        string `json:"article_id"`
	Completed        bool   `json:"completed"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type updateReadingRequest struct {
	Completed        *bool `json:"completed"`
	TimeSpentSeconds *int  `json:"time_spent_seconds"`
}

type recordQuizRequest struct {
	ArticleID      string   `json:"article_id"`
	Score          int      `json:"score"`
	TotalQuestions int      `json:"total_questions"`
	Answers        []string `json:"answers"`
}

// RecordReading handles POST /api/progress/readings.
func (h *ProgressHandler) RecordReading(w http.ResponseWriter, r *http.Request) {
	var req recordReadingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.RecordReading(r.Context(), progress.RecordReadingInput{
		ArticleID:        req.ArticleID,
		Completed:        req.Completed,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReadingResultResponse(*res))
}

// UpdateReading handles PATCH /api/progress/readings/{id}.
func (h *ProgressHandler) UpdateReading(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateReadingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.UpdateReading(r.Context(), progress.UpdateReadingInput{
		ID:               id,
		Completed:        req.Completed,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReadingResultResponse(*res))
}

// ListReadings handles GET /api/progress/readings?limit=.
func (h *ProgressHandler) ListReadings(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	recs, err := h.svc.ListReadingHistory(r.Context(), progress.ListHistoryInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]readingResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toReadingResponse(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// RecordQuiz handles POST /api/progress/quizzes.
func (h *ProgressHandler) RecordQuiz(w http.ResponseWriter, r *http.Request) {
	var req recordQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.svc.RecordQuizResult(r.Context(), progress.RecordQuizInput{
		ArticleID:      req.ArticleID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Answers:        req.Answers,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, quizOutcomeResponse{
		Quiz:     toQuizResponse(out.Result),
		XPEarned: out.XPEarned,
		Progress: toProgressResponse(out.Progress),
	})
}

// ListQuizzes handles GET /api/progress/quizzes?limit=.
func (h *ProgressHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	results, err := h.svc.ListQuizResults(r.Context(), progress.ListHistoryInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]quizResponse, 0, len(results))
	for _, q := range results {
		items = append(items, toQuizResponse(q))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
