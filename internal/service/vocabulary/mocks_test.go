package vocabulary

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"sync"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc  func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, fields domain.WordFields) (*domain.Word, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			W   *domain.Word
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.WordFilter
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			Fields domain.WordFields
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *wordRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.WordFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.WordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordRepoMock) Update(ctx context.Context, userID uuid.UUID, wordID uuid.UUID, fields domain.WordFields) (*domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		Fields domain.WordFields
	}{Ctx: ctx, UserID: userID, WordID: wordID, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, wordID, fields)
}

func (mock *wordRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
	Fields domain.WordFields
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
	}{Ctx: ctx, UserID: userID, WordID: wordID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
