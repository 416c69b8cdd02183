package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.UserProfile, error)
}

// ProfileHandler serves the learner profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	CEFRLevel        *domain.CEFRLevel `json:"cefr_level"`
	LearningGoals    *string           `json:"learning_goals"`
	Topics           *[]string         `json:"topics"`
	DailyGoalMinutes *int              `json:"daily_goal_minutes"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(*p))
}

// Update handles PATCH /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), profile.UpdateProfileInput{
		CEFRLevel:        req.CEFRLevel,
		LearningGoals:    req.LearningGoals,
		Topics:           req.Topics,
		DailyGoalMinutes: req.DailyGoalMinutes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(*p))
}
