// Package ledger holds the expense list of a signed-in user and reconciles
// form submissions with the remote store and the local cache.
package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/events"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// WritePolicy decides when a new remote record appears in the list.
type WritePolicy string

const (
	// WriteConfirmed adds the record after the remote store acknowledged it.
	WriteConfirmed WritePolicy = "confirmed"

	// WriteOptimistic adds the record immediately and removes it again
	// if the remote write fails.
	WriteOptimistic WritePolicy = "optimistic"
)

// ParseWritePolicy parses a write policy. The empty string is WriteConfirmed.
func ParseWritePolicy(s string) (WritePolicy, error) {
	switch p := WritePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return WriteConfirmed, nil
	case WriteConfirmed, WriteOptimistic:
		return p, nil
	default:
		return "", fmt.Errorf("unknown write policy %q, must be one of %q or %q", s, WriteConfirmed, WriteOptimistic)
	}
}

// Options configures a Ledger.
type Options struct {
	Owner    string           // ID of the user owning the ledger
	Remote   store.Remote     // Remote store, nil for an offline ledger
	Cache    store.Cache      // Local cache, may be nil
	Events   events.Publisher // Receives committed mutations, may be nil
	Policy   WritePolicy      // Defaults to WriteConfirmed
	Seed     bool             // Seed sample expenses when the cache was never written
	Clock    func() time.Time // Defaults to time.Now
	Location *time.Location   // Location for calendar days, defaults to time.Local
}

// Ledger is the expense list of one user.
//
// The list is guarded by a mutex that is only held while reading or
// splicing it, never during remote calls. Concurrent edits of the same
// record are not serialized: the last remote write wins.
type Ledger struct {
	opts Options

	mu          sync.RWMutex
	expenses    []models.Expense
	version     uint64
	lastLocalID int64

	mirrorMu sync.Mutex
	mirrored uint64
}

// New creates an empty ledger. Call Load to populate it.
func New(opts Options) *Ledger {
	if opts.Policy == "" {
		opts.Policy = WriteConfirmed
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Events == nil {
		opts.Events = events.Nop{}
	}

	return &Ledger{
		opts:     opts,
		expenses: []models.Expense{},
	}
}

// Owner returns the ID of the user owning the ledger.
func (l *Ledger) Owner() string {
	return l.opts.Owner
}

// Offline reports whether the ledger has no remote store.
func (l *Ledger) Offline() bool {
	return l.opts.Remote == nil
}

// Load populates the list.
//
// The cached list is used as fallback state. When nothing was ever cached
// and seeding is enabled, the sample expenses are used instead. The remote
// records are then synced, see Sync.
func (l *Ledger) Load(ctx context.Context) error {
	l.replace(ctx, l.loadCache(ctx))
	return l.Sync(ctx)
}

// Sync replaces the remote records of the list with the records held by
// the remote store. Local records keep their position in front of them.
// On failure the list is left unchanged and the error is returned.
func (l *Ledger) Sync(ctx context.Context) error {
	if l.Offline() {
		return nil
	}

	remote, err := l.opts.Remote.ListByOwner(ctx, l.opts.Owner)
	if err != nil {
		log.Error().Err(err).Str("owner", l.opts.Owner).Msg("loading remote expenses, keeping cached expenses")
		return fmt.Errorf("loading expenses: %w", err)
	}

	l.mu.Lock()
	merged := make([]models.Expense, 0, len(l.expenses)+len(remote))
	for _, e := range l.expenses {
		if !e.IsRemote() {
			merged = append(merged, e)
		}
	}
	for _, e := range remote {
		e.Origin = models.OriginRemote
		merged = append(merged, e)
	}
	l.expenses = merged
	snapshot, version := l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)
	return nil
}

func (l *Ledger) loadCache(ctx context.Context) []models.Expense {
	if l.opts.Cache == nil {
		if l.opts.Seed {
			return SampleExpenses()
		}
		return []models.Expense{}
	}

	cached, ok, err := l.opts.Cache.Load(ctx, l.opts.Owner)
	if err != nil {
		log.Error().Err(err).Str("owner", l.opts.Owner).Msg("reading cached expenses")
		return []models.Expense{}
	}

	if !ok {
		if l.opts.Seed {
			return SampleExpenses()
		}
		return []models.Expense{}
	}

	return cached
}

// replace sets the whole list and mirrors it.
func (l *Ledger) replace(ctx context.Context, expenses []models.Expense) {
	l.mu.Lock()
	l.expenses = expenses
	snapshot, version := l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)
}

// snapshot copies the list and bumps the version. l.mu must be held.
func (l *Ledger) snapshot() ([]models.Expense, uint64) {
	l.version++
	return slices.Clone(l.expenses), l.version
}

// mirror writes the list to the cache. Snapshots older than the last
// written one are skipped. Errors are logged only.
func (l *Ledger) mirror(ctx context.Context, snapshot []models.Expense, version uint64) {
	if l.opts.Cache == nil {
		return
	}

	l.mirrorMu.Lock()
	defer l.mirrorMu.Unlock()

	if version <= l.mirrored {
		return
	}

	if err := l.opts.Cache.Save(ctx, l.opts.Owner, snapshot); err != nil {
		log.Error().Err(err).Str("owner", l.opts.Owner).Msg("mirroring expenses to cache")
		return
	}

	l.mirrored = version
}

func (l *Ledger) publish(ctx context.Context, kind events.Kind, e models.Expense) {
	err := l.opts.Events.Publish(ctx, events.Event{
		Kind:       kind,
		Owner:      l.opts.Owner,
		Expense:    e,
		OccurredAt: l.opts.Clock().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("id", string(e.ID)).Msg("publishing event")
	}
}

// indexOf returns the position of id in the list. l.mu must be held.
func (l *Ledger) indexOf(id models.ExpenseID) int {
	return slices.IndexFunc(l.expenses, func(e models.Expense) bool {
		return e.ID == id
	})
}

// nextLocalID returns a numeric id based on the current time in
// milliseconds that is unique within the list. l.mu must be held.
func (l *Ledger) nextLocalID(at time.Time) models.ExpenseID {
	n := at.UnixMilli()
	if n <= l.lastLocalID {
		n = l.lastLocalID + 1
	}

	for l.indexOf(models.ExpenseID(strconv.FormatInt(n, 10))) != -1 {
		n++
	}

	l.lastLocalID = n
	return models.ExpenseID(strconv.FormatInt(n, 10))
}

// Add validates the input and records a new expense.
func (l *Ledger) Add(ctx context.Context, in Input) (models.Expense, error) {
	v, err := in.validate()
	if err != nil {
		return models.Expense{}, err
	}

	e := models.Expense{
		Name:     v.name,
		Category: v.category,
		Amount:   v.amount,
		Date:     l.opts.Clock().UTC(),
	}

	if l.Offline() {
		l.mu.Lock()
		e.ID = l.nextLocalID(e.Date)
		e.Origin = models.OriginLocal
		l.expenses = append(l.expenses, e)
		snapshot, version := l.snapshot()
		l.mu.Unlock()

		l.mirror(ctx, snapshot, version)
		l.publish(ctx, events.ExpenseCreated, e)
		observe("add", e, nil)
		return e, nil
	}

	e.ID = models.ExpenseID(uuid.NewString())
	e.UserID = l.opts.Owner
	e.Origin = models.OriginRemote

	if l.opts.Policy == WriteOptimistic {
		err = l.addOptimistic(ctx, e)
	} else {
		err = l.addConfirmed(ctx, e)
	}

	observe("add", e, err)
	if err != nil {
		return models.Expense{}, err
	}

	l.publish(ctx, events.ExpenseCreated, e)
	return e, nil
}

func (l *Ledger) addConfirmed(ctx context.Context, e models.Expense) error {
	if err := l.opts.Remote.Create(ctx, e); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	l.mu.Lock()
	l.expenses = append(l.expenses, e)
	snapshot, version := l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)
	return nil
}

func (l *Ledger) addOptimistic(ctx context.Context, e models.Expense) error {
	l.mu.Lock()
	l.expenses = append(l.expenses, e)
	snapshot, version := l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)

	err := l.opts.Remote.Create(ctx, e)
	if err == nil {
		return nil
	}

	l.mu.Lock()
	if i := l.indexOf(e.ID); i != -1 {
		l.expenses = slices.Delete(l.expenses, i, i+1)
	}
	snapshot, version = l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)
	return fmt.Errorf("adding expense: %w", err)
}

// Update replaces name, category and amount of the expense with the given id.
//
// Remote records are updated in the remote store first. The id, date,
// owner and origin of the record never change.
func (l *Ledger) Update(ctx context.Context, id models.ExpenseID, in Input) (models.Expense, error) {
	existing, err := l.Get(id)
	if err != nil {
		return models.Expense{}, err
	}

	v, err := in.validate()
	if err != nil {
		return models.Expense{}, err
	}

	updated := existing
	updated.Name = v.name
	updated.Category = v.category
	updated.Amount = v.amount

	if existing.IsRemote() {
		if l.Offline() {
			observe("update", existing, ErrRemoteUnavailable)
			return models.Expense{}, ErrRemoteUnavailable
		}

		if err := l.opts.Remote.Update(ctx, l.opts.Owner, id, store.FieldsOf(updated)); err != nil {
			observe("update", existing, err)
			return models.Expense{}, fmt.Errorf("updating expense: %w", err)
		}
	}

	l.mu.Lock()
	i := l.indexOf(id)
	if i == -1 {
		l.mu.Unlock()
		return models.Expense{}, ErrNotFound
	}
	l.expenses[i] = updated
	snapshot, version := l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)
	l.publish(ctx, events.ExpenseUpdated, updated)
	observe("update", updated, nil)

	return updated, nil
}

// Delete removes the expense with the given id. Nothing happens unless
// confirmed is true.
func (l *Ledger) Delete(ctx context.Context, id models.ExpenseID, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	existing, err := l.Get(id)
	if err != nil {
		return err
	}

	if existing.IsRemote() {
		if l.Offline() {
			observe("delete", existing, ErrRemoteUnavailable)
			return ErrRemoteUnavailable
		}

		if err := l.opts.Remote.Delete(ctx, l.opts.Owner, id); err != nil {
			observe("delete", existing, err)
			return fmt.Errorf("deleting expense: %w", err)
		}
	}

	l.mu.Lock()
	if i := l.indexOf(id); i != -1 {
		l.expenses = slices.Delete(l.expenses, i, i+1)
	}
	snapshot, version := l.snapshot()
	l.mu.Unlock()

	l.mirror(ctx, snapshot, version)
	l.publish(ctx, events.ExpenseDeleted, existing)
	observe("delete", existing, nil)

	return nil
}

// Get returns the expense with the given id.
func (l *Ledger) Get(id models.ExpenseID) (models.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i == -1 {
		return models.Expense{}, ErrNotFound
	}

	return l.expenses[i], nil
}

// Expenses returns a copy of the list in insertion order.
func (l *Ledger) Expenses() []models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.expenses)
}

// List returns the expenses matching the query, sorted as requested.
func (l *Ledger) List(q Query) []models.Expense {
	return q.Apply(l.Expenses())
}

// Now returns the current time in the ledger's location.
func (l *Ledger) Now() time.Time {
	return l.opts.Clock().In(l.opts.Location)
}

// Summary aggregates the current list.
func (l *Ledger) Summary() aggregate.Summary {
	return aggregate.Summarize(l.Expenses(), l.Now())
}

// Chart builds the chart series of kind for the current list.
func (l *Ledger) Chart(kind aggregate.ChartKind) aggregate.Chart {
	return aggregate.NewChart(kind, l.Summary())
}
