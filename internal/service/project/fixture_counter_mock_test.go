package project

import (
	"sync"
)

var _ fixtureCounter = &fixtureCounterMock{}

type fixtureCounterMock struct {
	AddFixturesFunc func(n int)

	calls struct {
		AddFixtures []struct {
			N int
		}
	}
	lockAddFixtures sync.RWMutex
}

func (mock *fixtureCounterMock) AddFixtures(n int) {
	if mock.AddFixturesFunc == nil {
		panic("fixtureCounterMock.AddFixturesFunc: method is nil but fixtureCounter.AddFixtures was just called")
	}
	callInfo := struct {
		N int
	}{N: n}
	mock.lockAddFixtures.Lock()
	mock.calls.AddFixtures = append(mock.calls.AddFixtures, callInfo)
	mock.lockAddFixtures.Unlock()
	mock.AddFixturesFunc(n)
}

func (mock *fixtureCounterMock) AddFixturesCalls() []struct {
	N int
} {
	mock.lockAddFixtures.RLock()
	calls := mock.calls.AddFixtures
	mock.lockAddFixtures.RUnlock()
	return calls
}
