package record

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc  func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	DeleteFunc  func(ctx context.Context, scope domain.RecordScope, id uuid.UUID) error
	GetFunc     func(ctx context.Context, scope domain.RecordScope, id uuid.UUID) (*domain.Record, error)
	ListFunc    func(ctx context.Context, scope domain.RecordScope, req domain.PageRequest) ([]domain.Record, int, error)
	ReplaceFunc func(ctx context.Context, scope domain.RecordScope, id uuid.UUID, data map[string]any) (*domain.Record, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.Record
		}
		Delete []struct {
			Ctx   context.Context
			Scope domain.RecordScope
			ID    uuid.UUID
		}
		Get []struct {
			Ctx   context.Context
			Scope domain.RecordScope
			ID    uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Scope domain.RecordScope
			Req   domain.PageRequest
		}
		Replace []struct {
			Ctx   context.Context
			Scope domain.RecordScope
			ID    uuid.UUID
			Data  map[string]any
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGet     sync.RWMutex
	lockList    sync.RWMutex
	lockReplace sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Record
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, scope domain.RecordScope, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.RecordScope
		ID    uuid.UUID
	}{Ctx: ctx, Scope: scope, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, scope, id)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Scope domain.RecordScope
	ID    uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordRepoMock) Get(ctx context.Context, scope domain.RecordScope, id uuid.UUID) (*domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordRepoMock.GetFunc: method is nil but recordRepo.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.RecordScope
		ID    uuid.UUID
	}{Ctx: ctx, Scope: scope, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, scope, id)
}

func (mock *recordRepoMock) GetCalls() []struct {
	Ctx   context.Context
	Scope domain.RecordScope
	ID    uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordRepoMock) List(ctx context.Context, scope domain.RecordScope, req domain.PageRequest) ([]domain.Record, int, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.RecordScope
		Req   domain.PageRequest
	}{Ctx: ctx, Scope: scope, Req: req}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, req)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Scope domain.RecordScope
	Req   domain.PageRequest
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) Replace(ctx context.Context, scope domain.RecordScope, id uuid.UUID, data map[string]any) (*domain.Record, error) {
	if mock.ReplaceFunc == nil {
		panic("recordRepoMock.ReplaceFunc: method is nil but recordRepo.Replace was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.RecordScope
		ID    uuid.UUID
		Data  map[string]any
	}{Ctx: ctx, Scope: scope, ID: id, Data: data}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, scope, id, data)
}

func (mock *recordRepoMock) ReplaceCalls() []struct {
	Ctx   context.Context
	Scope domain.RecordScope
	ID    uuid.UUID
	Data  map[string]any
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}
