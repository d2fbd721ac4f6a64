package cache

import (
	"context"
	"sync"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
)

// Memory keeps the serialized lists in process memory.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

var _ store.Cache = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

func (m *Memory) Load(_ context.Context, user string) ([]models.Expense, bool, error) {
	m.mu.Lock()
	b, ok := m.blobs[user]
	m.mu.Unlock()

	if !ok {
		return nil, false, nil
	}

	expenses, err := store.Decode(b)
	if err != nil {
		return nil, false, err
	}
	return expenses, true, nil
}

func (m *Memory) Save(_ context.Context, user string, expenses []models.Expense) error {
	b, err := store.Encode(expenses)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.blobs[user] = b
	m.mu.Unlock()

	return nil
}

// Raw returns the serialized list of user.
func (m *Memory) Raw(user string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blobs[user]
	return string(b), ok
}

// Put stores a raw blob for user.
func (m *Memory) Put(user, blob string) {
	m.mu.Lock()
	m.blobs[user] = []byte(blob)
	m.mu.Unlock()
}
