// Package ledger holds the client-style time ledger: the ordered list of a
// member's exchanges and the balance derived from it. It backs the demo flow
// only — the authoritative balance for the real request workflow lives on
// the server profile, and this ledger never writes it.
package ledger

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

// StartingBalance is the hour credit every installation begins with.
const StartingBalance = 15.0

const snapshotName = "ledger"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether s admits no further transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type EntryType string

const (
	TypeEarned EntryType = "earned"
	TypeSpent  EntryType = "spent"
)

// ServiceSnapshot and ProviderSnapshot are frozen copies of the related
// records taken when the entry is created; they never track later edits.
type ServiceSnapshot struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type ProviderSnapshot struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Entry struct {
	ID       string           `json:"id"`
	Service  ServiceSnapshot  `json:"service"`
	Provider ProviderSnapshot `json:"provider"`
	Hours    float64          `json:"hours"`
	Date     time.Time        `json:"date"`
	Status   Status           `json:"status"`
	Type     EntryType        `json:"type"`
}

// SnapshotStore is the durable client-local storage the ledger persists to.
// Implemented by localstate.Store.
type SnapshotStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, value []byte) error
}

// Ledger keeps entries most-recent-first and persists a snapshot on every
// mutation. In-memory state stays authoritative when persistence fails; the
// failure is logged and the mutation still applies.
type Ledger struct {
	mu      sync.Mutex
	store   SnapshotStore
	entries []Entry
}

type snapshot struct {
	Entries []Entry `json:"entries"`
}

// New restores the ledger from its snapshot, seeding the demo entries on a
// fresh installation.
func New(ctx context.Context, store SnapshotStore) (*Ledger, error) {
	l := &Ledger{store: store}

	raw, err := store.Get(ctx, snapshotName)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		l.entries = seedEntries()
		l.persist(ctx)
		return l, nil
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errs.NewDatabaseError("read", "corrupt ledger snapshot", err)
	}
	l.entries = snap.Entries
	return l, nil
}

// Add inserts e at the head of the ledger. Hours must be positive, the type
// must be earned or spent, and the id must be new. A missing status
// defaults to pending; a terminal initial status is accepted as-is (the
// seed data uses it).
func (l *Ledger) Add(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return errs.NewValidationError("entry id is required")
	}
	if e.Hours <= 0 {
		return errs.NewValidationError("hours must be positive")
	}
	if e.Type != TypeEarned && e.Type != TypeSpent {
		return errs.NewValidationError("type must be earned or spent")
	}
	switch e.Status {
	case "":
		e.Status = StatusPending
	case StatusPending, StatusCompleted, StatusCancelled:
	default:
		return errs.NewValidationError("unknown status: " + string(e.Status))
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == e.ID {
			return errs.NewAlreadyExistsError("entry already exists: " + e.ID)
		}
	}

	l.entries = append([]Entry{e}, l.entries...)
	l.persistLocked(ctx)
	return nil
}

// Complete marks a pending entry completed.
func (l *Ledger) Complete(ctx context.Context, id string) error {
	return l.transition(ctx, id, StatusCompleted)
}

// Cancel marks a pending entry cancelled. Cancellation is a terminal
// status, not removal; entries are never deleted.
func (l *Ledger) Cancel(ctx context.Context, id string) error {
	return l.transition(ctx, id, StatusCancelled)
}

func (l *Ledger) transition(ctx context.Context, id string, target Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		if l.entries[i].Status.Terminal() {
			return errs.NewInvalidTransitionError(
				"entry " + id + " is already " + string(l.entries[i].Status))
		}
		l.entries[i].Status = target
		l.persistLocked(ctx)
		return nil
	}
	return errs.NewNotFoundError("entry not found: " + id)
}

// Balance recomputes the time balance on every call: the starting credit,
// plus hours of completed earned entries, minus hours of completed spent
// entries. Pending and cancelled entries never count.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := StartingBalance
	for _, e := range l.entries {
		if e.Status != StatusCompleted {
			continue
		}
		if e.Type == TypeEarned {
			balance += e.Hours
		} else {
			balance -= e.Hours
		}
	}
	return balance
}

// Entries returns a copy of the ledger, most recent first.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) persist(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.persistLocked(ctx)
}

func (l *Ledger) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(snapshot{Entries: l.entries})
	if err == nil {
		err = l.store.Put(ctx, snapshotName, raw)
	}
	if err != nil {
		// In-memory state stays authoritative for the session.
		log := logger.FromContext(ctx)
		log.Warn("failed to persist ledger snapshot", "error", err)
	}
}
