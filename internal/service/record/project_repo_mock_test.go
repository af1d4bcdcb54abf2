package record

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDAndKeyFunc func(ctx context.Context, id uuid.UUID, apiKey string) (*domain.Project, error)

	calls struct {
		GetByIDAndKey []struct {
			Ctx    context.Context
			ID     uuid.UUID
			ApiKey string
		}
	}
	lockGetByIDAndKey sync.RWMutex
}

func (mock *projectRepoMock) GetByIDAndKey(ctx context.Context, id uuid.UUID, apiKey string) (*domain.Project, error) {
	if mock.GetByIDAndKeyFunc == nil {
		panic("projectRepoMock.GetByIDAndKeyFunc: method is nil but projectRepo.GetByIDAndKey was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		ApiKey string
	}{Ctx: ctx, ID: id, ApiKey: apiKey}
	mock.lockGetByIDAndKey.Lock()
	mock.calls.GetByIDAndKey = append(mock.calls.GetByIDAndKey, callInfo)
	mock.lockGetByIDAndKey.Unlock()
	return mock.GetByIDAndKeyFunc(ctx, id, apiKey)
}

func (mock *projectRepoMock) GetByIDAndKeyCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	ApiKey string
} {
	mock.lockGetByIDAndKey.RLock()
	calls := mock.calls.GetByIDAndKey
	mock.lockGetByIDAndKey.RUnlock()
	return calls
}
