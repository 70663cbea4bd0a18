package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/pkg/helpers"
)

type stubSnapshotStore struct {
	snapshots map[string][]byte
	putCalls  int
	putErr    error
}

func newStubSnapshotStore() *stubSnapshotStore {
	return &stubSnapshotStore{snapshots: map[string][]byte{}}
}

func (s *stubSnapshotStore) Get(_ context.Context, name string) ([]byte, error) {
	return s.snapshots[name], nil
}

func (s *stubSnapshotStore) Put(_ context.Context, name string, value []byte) error {
	s.putCalls++
	if s.putErr != nil {
		return s.putErr
	}
	s.snapshots[name] = value
	return nil
}

func earnedEntry(id string, hours float64) Entry {
	return Entry{
		ID:       id,
		Service:  ServiceSnapshot{Title: "Aula de inglês", Category: "Educação"},
		Provider: ProviderSnapshot{Name: "Pedro Alves"},
		Hours:    hours,
		Type:     TypeEarned,
	}
}

func TestNewSeedsFreshInstallation(t *testing.T) {
	ctx := helpers.TestCtx()
	store := newStubSnapshotStore()

	l, err := New(ctx, store)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	entries := l.Entries()
	if len(entries) != 4 {
		t.Fatalf("got %d seed entries, want 4", len(entries))
	}
	if entries[0].ID != "t4" {
		t.Fatalf("entries not most-recent-first: first is %s", entries[0].ID)
	}

	// Starting credit of 15, minus the two completed spent seeds (1.5 + 3).
	if got := l.Balance(); got != 10.5 {
		t.Fatalf("seed balance = %v, want 10.5", got)
	}

	if store.snapshots["ledger"] == nil {
		t.Fatalf("seed snapshot was not persisted")
	}
}

func TestNewRestoresSnapshot(t *testing.T) {
	ctx := helpers.TestCtx()
	store := newStubSnapshotStore()

	l, err := New(ctx, store)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := l.Add(ctx, earnedEntry("e1", 2)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := l.Complete(ctx, "e1"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	restored, err := New(ctx, store)
	if err != nil {
		t.Fatalf("New on existing snapshot returned error: %v", err)
	}
	if len(restored.Entries()) != 5 {
		t.Fatalf("restored %d entries, want 5", len(restored.Entries()))
	}
	if got := restored.Balance(); got != 12.5 {
		t.Fatalf("restored balance = %v, want 12.5", got)
	}
}

func TestNewCorruptSnapshot(t *testing.T) {
	ctx := helpers.TestCtx()
	store := newStubSnapshotStore()
	store.snapshots["ledger"] = []byte("{not json")

	_, err := New(ctx, store)
	var dbErr *errs.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DatabaseError for corrupt snapshot, got %v", err)
	}
}

func TestCompleteEarnedEntryIncreasesBalance(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	before := l.Balance()

	if err := l.Add(ctx, earnedEntry("e1", 2)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if got := l.Balance(); got != before {
		t.Fatalf("pending entry moved balance: %v, want %v", got, before)
	}

	if err := l.Complete(ctx, "e1"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got := l.Balance(); got != before+2 {
		t.Fatalf("balance = %v, want %v", got, before+2)
	}
}

func TestCompleteSpentEntryDecreasesBalance(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	before := l.Balance()

	spent := earnedEntry("e2", 3)
	spent.Type = TypeSpent
	if err := l.Add(ctx, spent); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := l.Complete(ctx, "e2"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got := l.Balance(); got != before-3 {
		t.Fatalf("balance = %v, want %v", got, before-3)
	}
}

func TestCancelKeepsEntryOutOfBalance(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	before := l.Balance()

	if err := l.Add(ctx, earnedEntry("e3", 4)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := l.Cancel(ctx, "e3"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	if got := l.Balance(); got != before {
		t.Fatalf("cancelled entry moved balance: %v, want %v", got, before)
	}

	// Cancellation is terminal, never removal.
	found := false
	for _, e := range l.Entries() {
		if e.ID == "e3" {
			found = true
			if e.Status != StatusCancelled {
				t.Fatalf("entry status = %s, want cancelled", e.Status)
			}
		}
	}
	if !found {
		t.Fatalf("cancelled entry was removed from the ledger")
	}
}

func TestTransitionOnTerminalEntry(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := l.Add(ctx, earnedEntry("e4", 1)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := l.Complete(ctx, "e4"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	balance := l.Balance()

	var transitionErr *errs.InvalidTransitionError
	if err := l.Complete(ctx, "e4"); !errors.As(err, &transitionErr) {
		t.Fatalf("second Complete: expected InvalidTransitionError, got %v", err)
	}
	if err := l.Cancel(ctx, "e4"); !errors.As(err, &transitionErr) {
		t.Fatalf("Cancel of completed entry: expected InvalidTransitionError, got %v", err)
	}

	if got := l.Balance(); got != balance {
		t.Fatalf("failed transition moved balance: %v, want %v", got, balance)
	}
}

func TestTransitionUnknownEntry(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var notFound *errs.NotFoundError
	if err := l.Complete(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := l.Cancel(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var validation *errs.ValidationError

	noID := earnedEntry("", 2)
	if err := l.Add(ctx, noID); !errors.As(err, &validation) {
		t.Fatalf("missing id: expected ValidationError, got %v", err)
	}

	zeroHours := earnedEntry("e5", 0)
	if err := l.Add(ctx, zeroHours); !errors.As(err, &validation) {
		t.Fatalf("zero hours: expected ValidationError, got %v", err)
	}

	badType := earnedEntry("e5", 1)
	badType.Type = "borrowed"
	if err := l.Add(ctx, badType); !errors.As(err, &validation) {
		t.Fatalf("bad type: expected ValidationError, got %v", err)
	}

	badStatus := earnedEntry("e5", 1)
	badStatus.Status = "paused"
	if err := l.Add(ctx, badStatus); !errors.As(err, &validation) {
		t.Fatalf("bad status: expected ValidationError, got %v", err)
	}
}

func TestAddDuplicateID(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := l.Add(ctx, earnedEntry("e6", 1)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	var exists *errs.AlreadyExistsError
	if err := l.Add(ctx, earnedEntry("e6", 2)); !errors.As(err, &exists) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
}

func TestAddDefaults(t *testing.T) {
	ctx := helpers.TestCtx()
	l, err := New(ctx, newStubSnapshotStore())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	before := time.Now()
	if err := l.Add(ctx, earnedEntry("e7", 1)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	entries := l.Entries()
	if entries[0].ID != "e7" {
		t.Fatalf("new entry not at head: %s", entries[0].ID)
	}
	if entries[0].Status != StatusPending {
		t.Fatalf("default status = %s, want pending", entries[0].Status)
	}
	if entries[0].Date.Before(before) {
		t.Fatalf("default date set earlier than call time: %v", entries[0].Date)
	}
}

func TestPersistenceFailureKeepsMemoryState(t *testing.T) {
	ctx := helpers.TestCtx()
	store := newStubSnapshotStore()

	l, err := New(ctx, store)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	store.putErr = errors.New("disk full")
	if err := l.Add(ctx, earnedEntry("e8", 2)); err != nil {
		t.Fatalf("Add returned error despite persistence failure: %v", err)
	}
	if err := l.Complete(ctx, "e8"); err != nil {
		t.Fatalf("Complete returned error despite persistence failure: %v", err)
	}

	if got := l.Balance(); got != 12.5 {
		t.Fatalf("in-memory balance = %v, want 12.5", got)
	}
}
