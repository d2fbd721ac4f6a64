package ledger

import (
	"context"
	"sync"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
)

type entry struct {
	mu     sync.Mutex
	ledger *Ledger
	loaded bool // the cache was read
	synced bool // the remote records were loaded
}

// Registry owns the ledgers of all signed-in users.
type Registry struct {
	base Options

	mu      sync.Mutex
	ledgers map[string]*entry
}

// NewRegistry creates a registry. Every ledger is configured with base
// and the owner set to the user's ID.
func NewRegistry(base Options) *Registry {
	return &Registry{
		base:    base,
		ledgers: map[string]*entry{},
	}
}

// Get returns the ledger of owner. The first call loads it. When loading
// the remote records fails, the ledger serves the cached state and the
// next call tries again. Loading is not cancelled with ctx.
func (r *Registry) Get(ctx context.Context, owner string) *Ledger {
	r.mu.Lock()
	e, ok := r.ledgers[owner]
	if !ok {
		opts := r.base
		opts.Owner = owner
		e = &entry{ledger: New(opts)}
		r.ledgers[owner] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.synced {
		return e.ledger
	}

	ctx = context.WithoutCancel(ctx)

	var err error
	if e.loaded {
		err = e.ledger.Sync(ctx)
	} else {
		err = e.ledger.Load(ctx)
		e.loaded = true
	}

	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("serving cached expenses")
		return e.ledger
	}

	e.synced = true
	return e.ledger
}

// Drop forgets the ledger of owner. The cache is left untouched.
func (r *Registry) Drop(owner string) {
	r.mu.Lock()
	delete(r.ledgers, owner)
	r.mu.Unlock()
}

// Len returns the number of ledgers held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.ledgers)
}

// OnAuthStateChanged drops the ledger of a user that signed out.
func (r *Registry) OnAuthStateChanged(userID string, user *models.User) {
	if user == nil {
		r.Drop(userID)
	}
}
