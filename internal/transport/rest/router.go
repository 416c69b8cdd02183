package rest

import "net/http"

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health   *HealthHandler
	Words    *WordHandler
	Study    *StudyHandler
	Progress *ProgressHandler
	Profile  *ProfileHandler
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/words", h.Words.Save)
	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)
	mux.HandleFunc("PATCH /api/words/{id}", h.Words.Update)
	mux.HandleFunc("DELETE /api/words/{id}", h.Words.Delete)
	mux.HandleFunc("GET /api/words/{id}/history", h.Words.History)

	mux.HandleFunc("GET /api/study/queue", h.Study.Queue)
	mux.HandleFunc("POST /api/study/reviews", h.Study.Review)
	mux.HandleFunc("POST /api/study/reviews/undo", h.Study.Undo)
	mux.HandleFunc("GET /api/study/dashboard", h.Study.Dashboard)

	mux.HandleFunc("GET /api/progress", h.Progress.Get)
	mux.HandleFunc("PUT /api/progress/timezone", h.Progress.SetTimezone)
	mux.HandleFunc("POST /api/progress/activities", h.Progress.RecordActivity)
	mux.HandleFunc("GET /api/progress/activities", h.Progress.ListActivities)
	mux.HandleFunc("POST /api/progress/readings", h.Progress.RecordReading)
	mux.HandleFunc("GET /api/progress/readings", h.Progress.ListReadings)
	mux.HandleFunc("PATCH /api/progress/readings/{id}", h.Progress.UpdateReading)
	mux.HandleFunc("POST /api/progress/quizzes", h.Progress.RecordQuiz)
	mux.HandleFunc("GET /api/progress/quizzes", h.Progress.ListQuizzes)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)
	mux.HandleFunc("PATCH /api/profile", h.Profile.Update)

	return mux
}
