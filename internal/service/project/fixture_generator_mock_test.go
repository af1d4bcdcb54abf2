package project

import (
	"sync"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

var _ fixtureGenerator = &fixtureGeneratorMock{}

type fixtureGeneratorMock struct {
	GenerateFunc func(res domain.Resource, count int) ([]map[string]any, error)

	calls struct {
		Generate []struct {
			Res   domain.Resource
			Count int
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *fixtureGeneratorMock) Generate(res domain.Resource, count int) ([]map[string]any, error) {
	if mock.GenerateFunc == nil {
		panic("fixtureGeneratorMock.GenerateFunc: method is nil but fixtureGenerator.Generate was just called")
	}
	callInfo := struct {
		Res   domain.Resource
		Count int
	}{Res: res, Count: count}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(res, count)
}

func (mock *fixtureGeneratorMock) GenerateCalls() []struct {
	Res   domain.Resource
	Count int
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
