package vocabulary

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

const (
	maxLemmaLen       = 255
	maxPOSLen         = 50
	maxIPALen         = 255
	maxDefinitionLen  = 2000
	maxTranslationLen = 1000
	maxExampleLen     = 2000
	maxSourceLen      = 255

	defaultListLimit = 50
	maxListLimit     = 200
)

// SaveWordInput holds the parameters for saving a word.
type SaveWordInput struct {
	Lemma           string
	PartOfSpeech    string
	IPA             string
	Definition      string
	Translation     string
	Example         string
	SourceArticleID string
}

// Trim cleans all text fields in place.
func (i *SaveWordInput) Trim() {
	i.Lemma = domain.CleanText(i.Lemma)
	i.PartOfSpeech = domain.CleanText(i.PartOfSpeech)
	i.IPA = domain.CleanText(i.IPA)
	i.Definition = domain.CleanText(i.Definition)
	i.Translation = domain.CleanText(i.Translation)
	i.Example = domain.CleanText(i.Example)
	i.SourceArticleID = domain.CleanText(i.SourceArticleID)
}

// Validate checks all fields and collects all errors.
func (i *SaveWordInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeLemma(i.Lemma) == "" {
		errs = append(errs, domain.FieldError{Field: "lemma", Message: "required"})
	}
	errs = checkLen(errs, "lemma", i.Lemma, maxLemmaLen)
	errs = checkLen(errs, "pos", i.PartOfSpeech, maxPOSLen)
	errs = checkLen(errs, "ipa", i.IPA, maxIPALen)
	errs = checkLen(errs, "definition", i.Definition, maxDefinitionLen)
	errs = checkLen(errs, "translation", i.Translation, maxTranslationLen)
	errs = checkLen(errs, "example", i.Example, maxExampleLen)
	errs = checkLen(errs, "source_article_id", i.SourceArticleID, maxSourceLen)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListWordsInput holds the parameters for listing words.
type ListWordsInput struct {
	Search          *string
	DueOnly         bool
	SourceArticleID *string
	Sort            domain.WordSort
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i *ListWordsInput) Validate() error {
	var errs []domain.FieldError

	if i.Search != nil && utf8.RuneCountInString(*i.Search) > maxLemmaLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 255 characters"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be created_desc, next_review_asc, or lemma_asc"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWordInput holds the parameters for editing a word. Nil fields stay
// unchanged; the review state is never touched.
type UpdateWordInput struct {
	WordID       uuid.UUID
	PartOfSpeech *string
	IPA          *string
	Definition   *string
	Translation  *string
	Example      *string
}

// Fields returns the trimmed field changes.
func (i *UpdateWordInput) Fields() domain.WordFields {
	return domain.WordFields{
		PartOfSpeech: domain.CleanTextPtr(i.PartOfSpeech),
		IPA:          domain.CleanTextPtr(i.IPA),
		Definition:   domain.CleanTextPtr(i.Definition),
		Translation:  domain.CleanTextPtr(i.Translation),
		Example:      domain.CleanTextPtr(i.Example),
	}
}

// Validate checks all fields and collects all errors.
func (i *UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	f := i.Fields()
	errs = checkLenPtr(errs, "pos", f.PartOfSpeech, maxPOSLen)
	errs = checkLenPtr(errs, "ipa", f.IPA, maxIPALen)
	errs = checkLenPtr(errs, "definition", f.Definition, maxDefinitionLen)
	errs = checkLenPtr(errs, "translation", f.Translation, maxTranslationLen)
	errs = checkLenPtr(errs, "example", f.Example, maxExampleLen)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkLen(errs []domain.FieldError, field, value string, limit int) []domain.FieldError {
	if utf8.RuneCountInString(value) > limit {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func checkLenPtr(errs []domain.FieldError, field string, value *string, limit int) []domain.FieldError {
	if value == nil {
		return errs
	}
	return checkLen(errs, field, *value, limit)
}
