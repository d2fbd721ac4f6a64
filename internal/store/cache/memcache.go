package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/rs/zerolog/log"
)

// Memcache stores each user's list in memcached under <user>:expenses.
type Memcache struct {
	client *memcache.Client
}

var _ store.Cache = (*Memcache)(nil)

// NewMemcache connects to the memcached servers and pings them.
func NewMemcache(hosts ...string) (*Memcache, error) {
	log.Info().Strs("hosts", hosts).Msg("memcached hosts")

	mc := memcache.New(hosts...)
	if err := mc.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to memcached: %w", err)
	}

	return &Memcache{client: mc}, nil
}

func formatKey(user string) string {
	return user + ":" + store.CacheKey
}

func (m *Memcache) Load(_ context.Context, user string) ([]models.Expense, bool, error) {
	item, err := m.client.Get(formatKey(user))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache: %w", err)
	}

	expenses, err := store.Decode(item.Value)
	if err != nil {
		return nil, false, err
	}
	return expenses, true, nil
}

func (m *Memcache) Save(_ context.Context, user string, expenses []models.Expense) error {
	b, err := store.Encode(expenses)
	if err != nil {
		return err
	}

	err = m.client.Set(&memcache.Item{
		Key:   formatKey(user),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	return nil
}
