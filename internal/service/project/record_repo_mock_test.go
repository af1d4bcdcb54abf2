package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateBatchFunc     func(ctx context.Context, recs []domain.Record) (int, error)
	DeleteFunc          func(ctx context.Context, scope domain.RecordScope, id uuid.UUID) error
	DeleteByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int, error)
	ListFunc            func(ctx context.Context, scope domain.RecordScope, req domain.PageRequest) ([]domain.Record, int, error)

	calls struct {
		CreateBatch []struct {
			Ctx  context.Context
			Recs []domain.Record
		}
		Delete []struct {
			Ctx   context.Context
			Scope domain.RecordScope
			ID    uuid.UUID
		}
		DeleteByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Scope domain.RecordScope
			Req   domain.PageRequest
		}
	}
	lockCreateBatch     sync.RWMutex
	lockDelete          sync.RWMutex
	lockDeleteByProject sync.RWMutex
	lockList            sync.RWMutex
}

func (mock *recordRepoMock) CreateBatch(ctx context.Context, recs []domain.Record) (int, error) {
	if mock.CreateBatchFunc == nil {
		panic("recordRepoMock.CreateBatchFunc: method is nil but recordRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.Record
	}{Ctx: ctx, Recs: recs}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, recs)
}

func (mock *recordRepoMock) CreateBatchCalls() []struct {
	Ctx  context.Context
	Recs []domain.Record
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
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

func (mock *recordRepoMock) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	if mock.DeleteByProjectFunc == nil {
		panic("recordRepoMock.DeleteByProjectFunc: method is nil but recordRepo.DeleteByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockDeleteByProject.Lock()
	mock.calls.DeleteByProject = append(mock.calls.DeleteByProject, callInfo)
	mock.lockDeleteByProject.Unlock()
	return mock.DeleteByProjectFunc(ctx, projectID)
}

func (mock *recordRepoMock) DeleteByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockDeleteByProject.RLock()
	calls := mock.calls.DeleteByProject
	mock.lockDeleteByProject.RUnlock()
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
