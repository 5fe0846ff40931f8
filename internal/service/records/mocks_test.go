package records

import (
	"context"
	"sync"
)

// kvStoreMock is a moq-style mock of kvStore.
type kvStoreMock struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error

	calls struct {
		Get []struct{ Key string }
		Set []struct{ Key, Value string }
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (m *kvStoreMock) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc == nil {
		panic("kvStoreMock.GetFunc: method is nil but kvStore.Get was just called")
	}
	m.lockGet.Lock()
	m.calls.Get = append(m.calls.Get, struct{ Key string }{key})
	m.lockGet.Unlock()
	return m.GetFunc(ctx, key)
}

func (m *kvStoreMock) GetCalls() []struct{ Key string } {
	m.lockGet.RLock()
	defer m.lockGet.RUnlock()
	return m.calls.Get
}

func (m *kvStoreMock) Set(ctx context.Context, key, value string) error {
	if m.SetFunc == nil {
		panic("kvStoreMock.SetFunc: method is nil but kvStore.Set was just called")
	}
	m.lockSet.Lock()
	m.calls.Set = append(m.calls.Set, struct{ Key, Value string }{key, value})
	m.lockSet.Unlock()
	return m.SetFunc(ctx, key, value)
}

func (m *kvStoreMock) SetCalls() []struct{ Key, Value string } {
	m.lockSet.RLock()
	defer m.lockSet.RUnlock()
	return m.calls.Set
}
