package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc          func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	DeleteFunc          func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Project, error)
	ListByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	UpdateResourcesFunc func(ctx context.Context, id uuid.UUID, resources []domain.Resource) (*domain.Project, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Project
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		GetByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		UpdateResources []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Resources []domain.Resource
		}
	}
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockGetByOwner      sync.RWMutex
	lockListByOwner     sync.RWMutex
	lockUpdateResources sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Project
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Project
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *projectRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetByOwner(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByOwnerFunc == nil {
		panic("projectRepoMock.GetByOwnerFunc: method is nil but projectRepo.GetByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetByOwner.Lock()
	mock.calls.GetByOwner = append(mock.calls.GetByOwner, callInfo)
	mock.lockGetByOwner.Unlock()
	return mock.GetByOwnerFunc(ctx, ownerID, id)
}

func (mock *projectRepoMock) GetByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByOwner.RLock()
	calls := mock.calls.GetByOwner
	mock.lockGetByOwner.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	if mock.ListByOwnerFunc == nil {
		panic("projectRepoMock.ListByOwnerFunc: method is nil but projectRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *projectRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpdateResources(ctx context.Context, id uuid.UUID, resources []domain.Resource) (*domain.Project, error) {
	if mock.UpdateResourcesFunc == nil {
		panic("projectRepoMock.UpdateResourcesFunc: method is nil but projectRepo.UpdateResources was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Resources []domain.Resource
	}{Ctx: ctx, ID: id, Resources: resources}
	mock.lockUpdateResources.Lock()
	mock.calls.UpdateResources = append(mock.calls.UpdateResources, callInfo)
	mock.lockUpdateResources.Unlock()
	return mock.UpdateResourcesFunc(ctx, id, resources)
}

func (mock *projectRepoMock) UpdateResourcesCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Resources []domain.Resource
} {
	mock.lockUpdateResources.RLock()
	calls := mock.calls.UpdateResources
	mock.lockUpdateResources.RUnlock()
	return calls
}
