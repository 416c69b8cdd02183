package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/study"
	"github.com/heartmarshall/mylingua-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	SaveWord(ctx context.Context, input vocabulary.SaveWordInput) (*domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context, input vocabulary.ListWordsInput) ([]domain.Word, int, error)
	UpdateWord(ctx context.Context, input vocabulary.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
}

type wordHistoryService interface {
	GetWordHistory(ctx context.Context, input study.GetWordHistoryInput) (*study.WordHistory, error)
}

// WordHandler serves the saved-word endpoints.
type WordHandler struct {
	words   vocabularyService
	history wordHistoryService
	log     *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(words vocabularyService, history wordHistoryService, logger *slog.Logger) *WordHandler {
	return &WordHandler{words: words, history: history, log: logger.With("handler", "words")}
}

type saveWordRequest struct {
	Lemma           string `json:"lemma"`
	PartOfSpeech    string `json:"pos"`
	IPA             string `json:"ipa"`
	Definition      string `json:"definition"`
	Translation     string `json:"translation"`
	Example         string `json:"example"`
	SourceArticleID string `json:"source_article_id"`
}

type updateWordRequest struct {
	PartOfSpeech *string `json:"pos"`
	IPA          *string `json:"ipa"`
	Definition   *string `json:"definition"`
	Translation  *string `json:"translation"`
	Example      *string `json:"example"`
}

// Save handles POST /api/words.
func (h *WordHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.words.SaveWord(r.Context(), vocabulary.SaveWordInput{
		Lemma:           req.Lemma,
		PartOfSpeech:    req.PartOfSpeech,
		IPA:             req.IPA,
		Definition:      req.Definition,
		Translation:     req.Translation,
		Example:         req.Example,
		SourceArticleID: req.SourceArticleID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	word, err := h.words.GetWord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// List handles GET /api/words?search=&due=&source=&sort=&limit=&offset=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	input := vocabulary.ListWordsInput{
		DueOnly: q.Get("due") == "true",
		Sort:    domain.WordSort(q.Get("sort")),
		Limit:   limit,
		Offset:  offset,
	}
	if s := q.Get("search"); s != "" {
		input.Search = &s
	}
	if src := q.Get("source"); src != "" {
		input.SourceArticleID = &src
	}

	words, total, err := h.words.ListWords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordListResponse{Items: toWordResponses(words), Total: total})
}

// Update handles PATCH /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.words.UpdateWord(r.Context(), vocabulary.UpdateWordInput{
		WordID:       id,
		PartOfSpeech: req.PartOfSpeech,
		IPA:          req.IPA,
		Definition:   req.Definition,
		Translation:  req.Translation,
		Example:      req.Example,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.words.DeleteWord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/words/{id}/history.
func (h *WordHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	hist, err := h.history.GetWordHistory(r.Context(), study.GetWordHistoryInput{
		WordID: id,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]reviewLogResponse, 0, len(hist.Logs))
	for _, l := range hist.Logs {
		items = append(items, toReviewLogResponse(l))
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items, Total: hist.Total})
}
