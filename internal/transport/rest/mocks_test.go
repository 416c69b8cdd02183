package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/profile"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
	"github.com/heartmarshall/mylingua-backend/internal/service/study"
	"github.com/heartmarshall/mylingua-backend/internal/service/vocabulary"
	"sync"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	SaveWordFunc   func(ctx context.Context, input vocabulary.SaveWordInput) (*domain.Word, error)
	GetWordFunc    func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWordsFunc  func(ctx context.Context, input vocabulary.ListWordsInput) ([]domain.Word, int, error)
	UpdateWordFunc func(ctx context.Context, input vocabulary.UpdateWordInput) (*domain.Word, error)
	DeleteWordFunc func(ctx context.Context, wordID uuid.UUID) error

	calls struct {
		SaveWord []struct {
			Ctx   context.Context
			Input vocabulary.SaveWordInput
		}
		GetWord []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
		ListWords []struct {
			Ctx   context.Context
			Input vocabulary.ListWordsInput
		}
		UpdateWord []struct {
			Ctx   context.Context
			Input vocabulary.UpdateWordInput
		}
		DeleteWord []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
	}
	lockSaveWord   sync.RWMutex
	lockGetWord    sync.RWMutex
	lockListWords  sync.RWMutex
	lockUpdateWord sync.RWMutex
	lockDeleteWord sync.RWMutex
}

func (mock *vocabularyServiceMock) SaveWord(ctx context.Context, input vocabulary.SaveWordInput) (*domain.Word, error) {
	if mock.SaveWordFunc == nil {
		panic("vocabularyServiceMock.SaveWordFunc: method is nil but vocabularyService.SaveWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.SaveWordInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveWord.Lock()
	mock.calls.SaveWord = append(mock.calls.SaveWord, callInfo)
	mock.lockSaveWord.Unlock()
	return mock.SaveWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) SaveWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.SaveWordInput
} {
	mock.lockSaveWord.RLock()
	calls := mock.calls.SaveWord
	mock.lockSaveWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("vocabularyServiceMock.GetWordFunc: method is nil but vocabularyService.GetWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{Ctx: ctx, WordID: wordID}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, wordID)
}

func (mock *vocabularyServiceMock) GetWordCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) ListWords(ctx context.Context, input vocabulary.ListWordsInput) ([]domain.Word, int, error) {
	if mock.ListWordsFunc == nil {
		panic("vocabularyServiceMock.ListWordsFunc: method is nil but vocabularyService.ListWords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.ListWordsInput
	}{Ctx: ctx, Input: input}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, input)
}

func (mock *vocabularyServiceMock) ListWordsCalls() []struct {
	Ctx   context.Context
	Input vocabulary.ListWordsInput
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) UpdateWord(ctx context.Context, input vocabulary.UpdateWordInput) (*domain.Word, error) {
	if mock.UpdateWordFunc == nil {
		panic("vocabularyServiceMock.UpdateWordFunc: method is nil but vocabularyService.UpdateWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.UpdateWordInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateWord.Lock()
	mock.calls.UpdateWord = append(mock.calls.UpdateWord, callInfo)
	mock.lockUpdateWord.Unlock()
	return mock.UpdateWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) UpdateWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.UpdateWordInput
} {
	mock.lockUpdateWord.RLock()
	calls := mock.calls.UpdateWord
	mock.lockUpdateWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("vocabularyServiceMock.DeleteWordFunc: method is nil but vocabularyService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{Ctx: ctx, WordID: wordID}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, wordID)
}

func (mock *vocabularyServiceMock) DeleteWordCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

var _ wordHistoryService = &wordHistoryServiceMock{}

type wordHistoryServiceMock struct {
	GetWordHistoryFunc func(ctx context.Context, input study.GetWordHistoryInput) (*study.WordHistory, error)

	calls struct {
		GetWordHistory []struct {
			Ctx   context.Context
			Input study.GetWordHistoryInput
		}
	}
	lockGetWordHistory sync.RWMutex
}

func (mock *wordHistoryServiceMock) GetWordHistory(ctx context.Context, input study.GetWordHistoryInput) (*study.WordHistory, error) {
	if mock.GetWordHistoryFunc == nil {
		panic("wordHistoryServiceMock.GetWordHistoryFunc: method is nil but wordHistoryService.GetWordHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetWordHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockGetWordHistory.Lock()
	mock.calls.GetWordHistory = append(mock.calls.GetWordHistory, callInfo)
	mock.lockGetWordHistory.Unlock()
	return mock.GetWordHistoryFunc(ctx, input)
}

func (mock *wordHistoryServiceMock) GetWordHistoryCalls() []struct {
	Ctx   context.Context
	Input study.GetWordHistoryInput
} {
	mock.lockGetWordHistory.RLock()
	calls := mock.calls.GetWordHistory
	mock.lockGetWordHistory.RUnlock()
	return calls
}

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	GetReviewQueueFunc func(ctx context.Context, input study.GetQueueInput) ([]domain.Word, error)
	ReviewWordFunc     func(ctx context.Context, input study.ReviewWordInput) (*study.ReviewResult, error)
	UndoReviewFunc     func(ctx context.Context, input study.UndoReviewInput) (*domain.Word, error)
	GetDashboardFunc   func(ctx context.Context) (domain.Dashboard, error)

	calls struct {
		GetReviewQueue []struct {
			Ctx   context.Context
			Input study.GetQueueInput
		}
		ReviewWord []struct {
			Ctx   context.Context
			Input study.ReviewWordInput
		}
		UndoReview []struct {
			Ctx   context.Context
			Input study.UndoReviewInput
		}
		GetDashboard []struct {
			Ctx context.Context
		}
	}
	lockGetReviewQueue sync.RWMutex
	lockReviewWord     sync.RWMutex
	lockUndoReview     sync.RWMutex
	lockGetDashboard   sync.RWMutex
}

func (mock *studyServiceMock) GetReviewQueue(ctx context.Context, input study.GetQueueInput) ([]domain.Word, error) {
	if mock.GetReviewQueueFunc == nil {
		panic("studyServiceMock.GetReviewQueueFunc: method is nil but studyService.GetReviewQueue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetQueueInput
	}{Ctx: ctx, Input: input}
	mock.lockGetReviewQueue.Lock()
	mock.calls.GetReviewQueue = append(mock.calls.GetReviewQueue, callInfo)
	mock.lockGetReviewQueue.Unlock()
	return mock.GetReviewQueueFunc(ctx, input)
}

func (mock *studyServiceMock) GetReviewQueueCalls() []struct {
	Ctx   context.Context
	Input study.GetQueueInput
} {
	mock.lockGetReviewQueue.RLock()
	calls := mock.calls.GetReviewQueue
	mock.lockGetReviewQueue.RUnlock()
	return calls
}

func (mock *studyServiceMock) ReviewWord(ctx context.Context, input study.ReviewWordInput) (*study.ReviewResult, error) {
	if mock.ReviewWordFunc == nil {
		panic("studyServiceMock.ReviewWordFunc: method is nil but studyService.ReviewWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ReviewWordInput
	}{Ctx: ctx, Input: input}
	mock.lockReviewWord.Lock()
	mock.calls.ReviewWord = append(mock.calls.ReviewWord, callInfo)
	mock.lockReviewWord.Unlock()
	return mock.ReviewWordFunc(ctx, input)
}

func (mock *studyServiceMock) ReviewWordCalls() []struct {
	Ctx   context.Context
	Input study.ReviewWordInput
} {
	mock.lockReviewWord.RLock()
	calls := mock.calls.ReviewWord
	mock.lockReviewWord.RUnlock()
	return calls
}

func (mock *studyServiceMock) UndoReview(ctx context.Context, input study.UndoReviewInput) (*domain.Word, error) {
	if mock.UndoReviewFunc == nil {
		panic("studyServiceMock.UndoReviewFunc: method is nil but studyService.UndoReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.UndoReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockUndoReview.Lock()
	mock.calls.UndoReview = append(mock.calls.UndoReview, callInfo)
	mock.lockUndoReview.Unlock()
	return mock.UndoReviewFunc(ctx, input)
}

func (mock *studyServiceMock) UndoReviewCalls() []struct {
	Ctx   context.Context
	Input study.UndoReviewInput
} {
	mock.lockUndoReview.RLock()
	calls := mock.calls.UndoReview
	mock.lockUndoReview.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	if mock.GetDashboardFunc == nil {
		panic("studyServiceMock.GetDashboardFunc: method is nil but studyService.GetDashboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetDashboard.Lock()
	mock.calls.GetDashboard = append(mock.calls.GetDashboard, callInfo)
	mock.lockGetDashboard.Unlock()
	return mock.GetDashboardFunc(ctx)
}

func (mock *studyServiceMock) GetDashboardCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetDashboard.RLock()
	calls := mock.calls.GetDashboard
	mock.lockGetDashboard.RUnlock()
	return calls
}

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetProgressFunc        func(ctx context.Context) (*domain.Progress, error)
	SetTimezoneFunc        func(ctx context.Context, input progress.SetTimezoneInput) (*domain.Progress, error)
	RecordActivityFunc     func(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error)
	ListActivitiesFunc     func(ctx context.Context, input progress.ListActivitiesInput) ([]domain.Activity, error)
	RecordReadingFunc      func(ctx context.Context, input progress.RecordReadingInput) (*progress.ReadingResult, error)
	UpdateReadingFunc      func(ctx context.Context, input progress.UpdateReadingInput) (*progress.ReadingResult, error)
	ListReadingHistoryFunc func(ctx context.Context, input progress.ListHistoryInput) ([]domain.ReadingRecord, error)
	RecordQuizResultFunc   func(ctx context.Context, input progress.RecordQuizInput) (*progress.QuizResultOutcome, error)
	ListQuizResultsFunc    func(ctx context.Context, input progress.ListHistoryInput) ([]domain.QuizResult, error)

	calls struct {
		GetProgress []struct {
			Ctx context.Context
		}
		SetTimezone []struct {
			Ctx   context.Context
			Input progress.SetTimezoneInput
		}
		RecordActivity []struct {
			Ctx   context.Context
			Input progress.RecordActivityInput
		}
		ListActivities []struct {
			Ctx   context.Context
			Input progress.ListActivitiesInput
		}
		RecordReading []struct {
			Ctx   context.Context
			Input progress.RecordReadingInput
		}
		UpdateReading []struct {
			Ctx   context.Context
			Input progress.UpdateReadingInput
		}
		ListReadingHistory []struct {
			Ctx   context.Context
			Input progress.ListHistoryInput
		}
		RecordQuizResult []struct {
			Ctx   context.Context
			Input progress.RecordQuizInput
		}
		ListQuizResults []struct {
			Ctx   context.Context
			Input progress.ListHistoryInput
		}
	}
	lockGetProgress        sync.RWMutex
	lockSetTimezone        sync.RWMutex
	lockRecordActivity     sync.RWMutex
	lockListActivities     sync.RWMutex
	lockRecordReading      sync.RWMutex
	lockUpdateReading      sync.RWMutex
	lockListReadingHistory sync.RWMutex
	lockRecordQuizResult   sync.RWMutex
	lockListQuizResults    sync.RWMutex
}

func (mock *progressServiceMock) GetProgress(ctx context.Context) (*domain.Progress, error) {
	if mock.GetProgressFunc == nil {
		panic("progressServiceMock.GetProgressFunc: method is nil but progressService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx)
}

func (mock *progressServiceMock) GetProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) SetTimezone(ctx context.Context, input progress.SetTimezoneInput) (*domain.Progress, error) {
	if mock.SetTimezoneFunc == nil {
		panic("progressServiceMock.SetTimezoneFunc: method is nil but progressService.SetTimezone was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.SetTimezoneInput
	}{Ctx: ctx, Input: input}
	mock.lockSetTimezone.Lock()
	mock.calls.SetTimezone = append(mock.calls.SetTimezone, callInfo)
	mock.lockSetTimezone.Unlock()
	return mock.SetTimezoneFunc(ctx, input)
}

func (mock *progressServiceMock) SetTimezoneCalls() []struct {
	Ctx   context.Context
	Input progress.SetTimezoneInput
} {
	mock.lockSetTimezone.RLock()
	calls := mock.calls.SetTimezone
	mock.lockSetTimezone.RUnlock()
	return calls
}

func (mock *progressServiceMock) RecordActivity(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error) {
	if mock.RecordActivityFunc == nil {
		panic("progressServiceMock.RecordActivityFunc: method is nil but progressService.RecordActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.RecordActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordActivity.Lock()
	mock.calls.RecordActivity = append(mock.calls.RecordActivity, callInfo)
	mock.lockRecordActivity.Unlock()
	return mock.RecordActivityFunc(ctx, input)
}

func (mock *progressServiceMock) RecordActivityCalls() []struct {
	Ctx   context.Context
	Input progress.RecordActivityInput
} {
	mock.lockRecordActivity.RLock()
	calls := mock.calls.RecordActivity
	mock.lockRecordActivity.RUnlock()
	return calls
}

func (mock *progressServiceMock) ListActivities(ctx context.Context, input progress.ListActivitiesInput) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("progressServiceMock.ListActivitiesFunc: method is nil but progressService.ListActivities was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.ListActivitiesInput
	}{Ctx: ctx, Input: input}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, input)
}

func (mock *progressServiceMock) ListActivitiesCalls() []struct {
	Ctx   context.Context
	Input progress.ListActivitiesInput
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *progressServiceMock) RecordReading(ctx context.Context, input progress.RecordReadingInput) (*progress.ReadingResult, error) {
	if mock.RecordReadingFunc == nil {
		panic("progressServiceMock.RecordReadingFunc: method is nil but progressService.RecordReading was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.RecordReadingInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordReading.Lock()
	mock.calls.RecordReading = append(mock.calls.RecordReading, callInfo)
	mock.lockRecordReading.Unlock()
	return mock.RecordReadingFunc(ctx, input)
}

func (mock *progressServiceMock) RecordReadingCalls() []struct {
	Ctx   context.Context
	Input progress.RecordReadingInput
} {
	mock.lockRecordReading.RLock()
	calls := mock.calls.RecordReading
	mock.lockRecordReading.RUnlock()
	return calls
}

func (mock *progressServiceMock) UpdateReading(ctx context.Context, input progress.UpdateReadingInput) (*progress.ReadingResult, error) {
	if mock.UpdateReadingFunc == nil {
		panic("progressServiceMock.UpdateReadingFunc: method is nil but progressService.UpdateReading was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.UpdateReadingInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateReading.Lock()
	mock.calls.UpdateReading = append(mock.calls.UpdateReading, callInfo)
	mock.lockUpdateReading.Unlock()
	return mock.UpdateReadingFunc(ctx, input)
}

func (mock *progressServiceMock) UpdateReadingCalls() []struct {
	Ctx   context.Context
	Input progress.UpdateReadingInput
} {
	mock.lockUpdateReading.RLock()
	calls := mock.calls.UpdateReading
	mock.lockUpdateReading.RUnlock()
	return calls
}

func (mock *progressServiceMock) ListReadingHistory(ctx context.Context, input progress.ListHistoryInput) ([]domain.ReadingRecord, error) {
	if mock.ListReadingHistoryFunc == nil {
		panic("progressServiceMock.ListReadingHistoryFunc: method is nil but progressService.ListReadingHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.ListHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockListReadingHistory.Lock()
	mock.calls.ListReadingHistory = append(mock.calls.ListReadingHistory, callInfo)
	mock.lockListReadingHistory.Unlock()
	return mock.ListReadingHistoryFunc(ctx, input)
}

func (mock *progressServiceMock) ListReadingHistoryCalls() []struct {
	Ctx   context.Context
	Input progress.ListHistoryInput
} {
	mock.lockListReadingHistory.RLock()
	calls := mock.calls.ListReadingHistory
	mock.lockListReadingHistory.RUnlock()
	return calls
}

func (mock *progressServiceMock) RecordQuizResult(ctx context.Context, input progress.RecordQuizInput) (*progress.QuizResultOutcome, error) {
	if mock.RecordQuizResultFunc == nil {
		panic("progressServiceMock.RecordQuizResultFunc: method is nil but progressService.RecordQuizResult was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.RecordQuizInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordQuizResult.Lock()
	mock.calls.RecordQuizResult = append(mock.calls.RecordQuizResult, callInfo)
	mock.lockRecordQuizResult.Unlock()
	return mock.RecordQuizResultFunc(ctx, input)
}

func (mock *progressServiceMock) RecordQuizResultCalls() []struct {
	Ctx   context.Context
	Input progress.RecordQuizInput
} {
	mock.lockRecordQuizResult.RLock()
	calls := mock.calls.RecordQuizResult
	mock.lockRecordQuizResult.RUnlock()
	return calls
}

func (mock *progressServiceMock) ListQuizResults(ctx context.Context, input progress.ListHistoryInput) ([]domain.QuizResult, error) {
	if mock.ListQuizResultsFunc == nil {
		panic("progressServiceMock.ListQuizResultsFunc: method is nil but progressService.ListQuizResults was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.ListHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockListQuizResults.Lock()
	mock.calls.ListQuizResults = append(mock.calls.ListQuizResults, callInfo)
	mock.lockListQuizResults.Unlock()
	return mock.ListQuizResultsFunc(ctx, input)
}

func (mock *progressServiceMock) ListQuizResultsCalls() []struct {
	Ctx   context.Context
	Input progress.ListHistoryInput
} {
	mock.lockListQuizResults.RLock()
	calls := mock.calls.ListQuizResults
	mock.lockListQuizResults.RUnlock()
	return calls
}

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfileFunc func(ctx context.Context, input profile.UpdateProfileInput) (*domain.UserProfile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input profile.UpdateProfileInput
		}
	}
	lockGetProfile    sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.UserProfile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input profile.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
