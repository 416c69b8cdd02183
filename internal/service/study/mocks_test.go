package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
	"sync"
	"time"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error)
	GetByIDForUpdateFunc  func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error)
	GetDueFunc            func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Word, error)
	CountDueFunc          func(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	CountFunc             func(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateReviewStateFunc func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, state domain.ReviewState) (*domain.Word, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
		GetDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
			Limit  int
		}
		CountDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateReviewState []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			State  domain.ReviewState
		}
	}
	lockGetByID           sync.RWMutex
	lockGetByIDForUpdate  sync.RWMutex
	lockGetDue            sync.RWMutex
	lockCountDue          sync.RWMutex
	lockCount             sync.RWMutex
	lockUpdateReviewState sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
	}{Ctx: ctx, UserID: userID, WordID: wordID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("wordRepoMock.GetByIDForUpdateFunc: method is nil but wordRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
	}{Ctx: ctx, UserID: userID, WordID: wordID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Word, error) {
	if mock.GetDueFunc == nil {
		panic("wordRepoMock.GetDueFunc: method is nil but wordRepo.GetDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, Now: now, Limit: limit}
	mock.lockGetDue.Lock()
	mock.calls.GetDue = append(mock.calls.GetDue, callInfo)
	mock.lockGetDue.Unlock()
	return mock.GetDueFunc(ctx, userID, now, limit)
}

func (mock *wordRepoMock) GetDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockGetDue.RLock()
	calls := mock.calls.GetDue
	mock.lockGetDue.RUnlock()
	return calls
}

func (mock *wordRepoMock) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	if mock.CountDueFunc == nil {
		panic("wordRepoMock.CountDueFunc: method is nil but wordRepo.CountDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lockCountDue.Lock()
	mock.calls.CountDue = append(mock.calls.CountDue, callInfo)
	mock.lockCountDue.Unlock()
	return mock.CountDueFunc(ctx, userID, now)
}

func (mock *wordRepoMock) CountDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	mock.lockCountDue.RLock()
	calls := mock.calls.CountDue
	mock.lockCountDue.RUnlock()
	return calls
}

func (mock *wordRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("wordRepoMock.CountFunc: method is nil but wordRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID)
}

func (mock *wordRepoMock) CountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *wordRepoMock) UpdateReviewState(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, state domain.ReviewState) (*domain.Word, error) {
	if mock.UpdateReviewStateFunc == nil {
		panic("wordRepoMock.UpdateReviewStateFunc: method is nil but wordRepo.UpdateReviewState was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		State  domain.ReviewState
	}{Ctx: ctx, UserID: userID, WordID: wordID, State: state}
	mock.lockUpdateReviewState.Lock()
	mock.calls.UpdateReviewState = append(mock.calls.UpdateReviewState, callInfo)
	mock.lockUpdateReviewState.Unlock()
	return mock.UpdateReviewStateFunc(ctx, userID, wordID, state)
}

func (mock *wordRepoMock) UpdateReviewStateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
	State  domain.ReviewState
} {
	mock.lockUpdateReviewState.RLock()
	calls := mock.calls.UpdateReviewState
	mock.lockUpdateReviewState.RUnlock()
	return calls
}

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc          func(ctx context.Context, log *domain.ReviewLog) error
	GetLastByWordIDFunc func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.ReviewLog, error)
	ListByWordIDFunc    func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, limit int, offset int) ([]domain.ReviewLog, int, error)
	CountSinceFunc      func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Log *domain.ReviewLog
		}
		GetLastByWordID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
		ListByWordID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			Limit  int
			Offset int
		}
		CountSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetLastByWordID sync.RWMutex
	lockListByWordID    sync.RWMutex
	lockCountSince      sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) error {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.ReviewLog
	}{Ctx: ctx, Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log *domain.ReviewLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) GetLastByWordID(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.ReviewLog, error) {
	if mock.GetLastByWordIDFunc == nil {
		panic("reviewLogRepoMock.GetLastByWordIDFunc: method is nil but reviewLogRepo.GetLastByWordID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
	}{Ctx: ctx, UserID: userID, WordID: wordID}
	mock.lockGetLastByWordID.Lock()
	mock.calls.GetLastByWordID = append(mock.calls.GetLastByWordID, callInfo)
	mock.lockGetLastByWordID.Unlock()
	return mock.GetLastByWordIDFunc(ctx, userID, wordID)
}

func (mock *reviewLogRepoMock) GetLastByWordIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockGetLastByWordID.RLock()
	calls := mock.calls.GetLastByWordID
	mock.lockGetLastByWordID.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) ListByWordID(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, limit int, offset int) ([]domain.ReviewLog, int, error) {
	if mock.ListByWordIDFunc == nil {
		panic("reviewLogRepoMock.ListByWordIDFunc: method is nil but reviewLogRepo.ListByWordID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, WordID: wordID, Limit: limit, Offset: offset}
	mock.lockListByWordID.Lock()
	mock.calls.ListByWordID = append(mock.calls.ListByWordID, callInfo)
	mock.lockListByWordID.Unlock()
	return mock.ListByWordIDFunc(ctx, userID, wordID, limit, offset)
}

func (mock *reviewLogRepoMock) ListByWordIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByWordID.RLock()
	calls := mock.calls.ListByWordID
	mock.lockListByWordID.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("reviewLogRepoMock.CountSinceFunc: method is nil but reviewLogRepo.CountSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, userID, since)
}

func (mock *reviewLogRepoMock) CountSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reviewLogRepoMock.DeleteFunc: method is nil but reviewLogRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reviewLogRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ progressTracker = &progressTrackerMock{}

type progressTrackerMock struct {
	RecordActivityFunc func(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error)
	GetProgressFunc    func(ctx context.Context) (*domain.Progress, error)

	calls struct {
		RecordActivity []struct {
			Ctx   context.Context
			Input progress.RecordActivityInput
		}
		GetProgress []struct {
			Ctx context.Context
		}
	}
	lockRecordActivity sync.RWMutex
	lockGetProgress    sync.RWMutex
}

func (mock *progressTrackerMock) RecordActivity(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error) {
	if mock.RecordActivityFunc == nil {
		panic("progressTrackerMock.RecordActivityFunc: method is nil but progressTracker.RecordActivity was just called")
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

func (mock *progressTrackerMock) RecordActivityCalls() []struct {
	Ctx   context.Context
	Input progress.RecordActivityInput
} {
	mock.lockRecordActivity.RLock()
	calls := mock.calls.RecordActivity
	mock.lockRecordActivity.RUnlock()
	return calls
}

func (mock *progressTrackerMock) GetProgress(ctx context.Context) (*domain.Progress, error) {
	if mock.GetProgressFunc == nil {
		panic("progressTrackerMock.GetProgressFunc: method is nil but progressTracker.GetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx)
}

func (mock *progressTrackerMock) GetProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
