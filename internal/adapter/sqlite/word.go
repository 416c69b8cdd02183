package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/adapter/querybuild"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// WordRepo provides word persistence backed by SQLite.
type WordRepo struct {
	db *DB
}

// NewWordRepo creates a new word repository.
func NewWordRepo(db *DB) *WordRepo {
	return &WordRepo{db: db}
}

var (
	wordColumns   = strings.Join(querybuild.WordColumns, ", ")
	wordReturning = "RETURNING " + wordColumns
	getWordSQL    = `SELECT ` + wordColumns + ` FROM words WHERE id = ? AND user_id = ?`
)

type wordRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Lemma           string    `db:"lemma"`
	LemmaNormalized string    `db:"lemma_normalized"`
	POS             string    `db:"pos"`
	IPA             string    `db:"ipa"`
	Definition      string    `db:"definition"`
	Translation     string    `db:"translation"`
	Example         string    `db:"example"`
	SourceArticleID string    `db:"source_article_id"`
	Easiness        float64   `db:"easiness"`
	IntervalDays    int       `db:"interval_days"`
	Repetitions     int       `db:"repetitions"`
	NextReview      int64     `db:"next_review"`
	CreatedAt       int64     `db:"created_at"`
	UpdatedAt       int64     `db:"updated_at"`
}

func (r wordRow) toDomain() *domain.Word {
	return &domain.Word{
		ID:              r.ID,
		UserID:          r.UserID,
		Lemma:           r.Lemma,
		LemmaNormalized: r.LemmaNormalized,
		PartOfSpeech:    r.POS,
		IPA:             r.IPA,
		Definition:      r.Definition,
		Translation:     r.Translation,
		Example:         r.Example,
		SourceArticleID: r.SourceArticleID,
		Review: domain.ReviewState{
			Easiness:    r.Easiness,
			Interval:    r.IntervalDays,
			Repetitions: r.Repetitions,
			NextReview:  fromMillis(r.NextReview),
		},
		CreatedAt: fromMillis(r.CreatedAt),
		UpdatedAt: fromMillis(r.UpdatedAt),
	}
}

func wordsToDomain(rows []wordRow) []domain.Word {
	words := make([]domain.Word, len(rows))
	for i, r := range rows {
		words[i] = *r.toDomain()
	}
	return words
}

// GetByID returns a word by primary key filtered by user_id.
func (r *WordRepo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	var dst wordRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, getWordSQL, wordID, userID); err != nil {
		return nil, mapError(err, "word", wordID)
	}
	return dst.toDomain(), nil
}

// GetByIDForUpdate is GetByID; the single connection already serialises
// transactions.
func (r *WordRepo) GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return r.GetByID(ctx, userID, wordID)
}

// List returns a page of words matching filter and the total match count.
func (r *WordRepo) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	q := r.db.q(ctx)
	page, count := querybuild.ListWords(builder(), userID, filter, func(t time.Time) any { return toMillis(t) })

	cntSQL, cntArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count words: %w", err)
	}
	var total int
	if err := q.QueryRowContext(ctx, cntSQL, cntArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	pageSQL, pageArgs, err := page.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list words: %w", err)
	}
	var rows []wordRow
	if err := sqlscan.Select(ctx, q, &rows, pageSQL, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	return wordsToDomain(rows), total, nil
}

// GetDue returns words with next_review <= now, oldest first.
func (r *WordRepo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Word, error) {
	page, _ := querybuild.ListWords(builder(), userID, domain.WordFilter{
		DueAt: &now,
		Sort:  domain.WordSortNextReviewAsc,
		Limit: limit,
	}, func(t time.Time) any { return toMillis(t) })

	query, args, err := page.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due words: %w", err)
	}

	var rows []wordRow
	if err := sqlscan.Select(ctx, r.db.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get due words: %w", err)
	}
	return wordsToDomain(rows), nil
}

// CountDue returns the number of words with next_review <= now.
func (r *WordRepo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var n int
	err := r.db.q(ctx).QueryRowContext(ctx,
		`SELECT count(*) FROM words WHERE user_id = ? AND next_review <= ?`, userID, toMillis(now),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count due words: %w", err)
	}
	return n, nil
}

// Count returns the number of saved words of a user.
func (r *WordRepo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := r.db.q(ctx).QueryRowContext(ctx, `SELECT count(*) FROM words WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Create inserts a word with its review state.
func (r *WordRepo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	query, args, err := builder().
		Insert("words").
		Columns(querybuild.WordColumns...).
		Values(
			w.ID, w.UserID, w.Lemma, w.LemmaNormalized, w.PartOfSpeech, w.IPA,
			w.Definition, w.Translation, w.Example, w.SourceArticleID,
			w.Review.Easiness, w.Review.Interval, w.Review.Repetitions, toMillis(w.Review.NextReview),
			toMillis(w.CreatedAt), toMillis(w.UpdatedAt),
		).
		Suffix(wordReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert word: %w", err)
	}

	var dst wordRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, query, args...); err != nil {
		return nil, mapError(err, "word", w.ID)
	}
	return dst.toDomain(), nil
}

// Update changes the descriptive fields of a word.
func (r *WordRepo) Update(ctx context.Context, userID, wordID uuid.UUID, fields domain.WordFields) (*domain.Word, error) {
	if fields.IsEmpty() {
		return r.GetByID(ctx, userID, wordID)
	}

	b := builder().Update("words").Set("updated_at", toMillis(time.Now()))
	query, args, err := querybuild.UpdateWordFields(b, fields).
		Where(querybuild.ByID(wordID)).
		Where(querybuild.OwnedBy(userID)).
		Suffix(wordReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	var dst wordRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, query, args...); err != nil {
		return nil, mapError(err, "word", wordID)
	}
	return dst.toDomain(), nil
}

// UpdateReviewState overwrites the SM-2 state of a word.
func (r *WordRepo) UpdateReviewState(ctx context.Context, userID, wordID uuid.UUID, state domain.ReviewState) (*domain.Word, error) {
	query, args, err := builder().
		Update("words").
		Set("easiness", state.Easiness).
		Set("interval_days", state.Interval).
		Set("repetitions", state.Repetitions).
		Set("next_review", toMillis(state.NextReview)).
		Set("updated_at", toMillis(time.Now())).
		Where(querybuild.ByID(wordID)).
		Where(querybuild.OwnedBy(userID)).
		Suffix(wordReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update review state: %w", err)
	}

	var dst wordRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, query, args...); err != nil {
		return nil, mapError(err, "word", wordID)
	}
	return dst.toDomain(), nil
}

// Delete removes a word; review logs cascade.
func (r *WordRepo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	res, err := r.db.q(ctx).ExecContext(ctx, `DELETE FROM words WHERE id = ? AND user_id = ?`, wordID, userID)
	if err != nil {
		return mapError(err, "word", wordID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("word %s: rows affected: %w", wordID, err)
	}
	if n == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}
