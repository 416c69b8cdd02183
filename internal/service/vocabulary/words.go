package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/study/sm2"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// SaveWord stores a new word with the initial review state.
// A lemma the user already saved yields domain.ErrAlreadyExists.
func (s *Service) SaveWord(ctx context.Context, input SaveWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Trim()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	initial := sm2.Initial(now)

	word, err := s.words.Create(ctx, &domain.Word{
		ID:              uuid.New(),
		UserID:          userID,
		Lemma:           input.Lemma,
		LemmaNormalized: domain.NormalizeLemma(input.Lemma),
		PartOfSpeech:    input.PartOfSpeech,
		IPA:             input.IPA,
		Definition:      input.Definition,
		Translation:     input.Translation,
		Example:         input.Example,
		SourceArticleID: input.SourceArticleID,
		Review: domain.ReviewState{
			Easiness:    initial.Easiness,
			Interval:    initial.Interval,
			Repetitions: initial.Repetitions,
			NextReview:  initial.NextReview,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("user_id", userID.String()),
		slog.String("word_id", word.ID.String()),
		slog.String("lemma", word.Lemma),
	)

	return word, nil
}

// GetWord returns a saved word of the current user.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	word, err := s.words.GetByID(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return word, nil
}

// ListWords returns a page of the current user's words and the total number
// of matches.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) ([]domain.Word, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.WordFilter{
		Search:          input.Search,
		SourceArticleID: input.SourceArticleID,
		Sort:            input.Sort,
		Limit:           input.Limit,
		Offset:          input.Offset,
	}
	if filter.Sort == "" {
		filter.Sort = domain.WordSortCreatedDesc
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if input.DueOnly {
		now := s.now()
		filter.DueAt = &now
	}

	words, total, err := s.words.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	return words, total, nil
}

// UpdateWord changes descriptive fields of a word.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	word, err := s.words.Update(ctx, userID, input.WordID, input.Fields())
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word updated",
		slog.String("user_id", userID.String()),
		slog.String("word_id", word.ID.String()),
	)

	return word, nil
}

// DeleteWord removes a word together with its review history.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.Delete(ctx, userID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)
	return nil
}
