package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

const favoritesSnapshotName = "favorites"

// Favorites is the set of service ids the member starred, persisted the
// same way as the ledger.
type Favorites struct {
	mu    sync.Mutex
	store SnapshotStore
	ids   []string
}

type favoritesSnapshot struct {
	Favorites []string `json:"favorites"`
}

func NewFavorites(ctx context.Context, store SnapshotStore) (*Favorites, error) {
	f := &Favorites{store: store}

	raw, err := store.Get(ctx, favoritesSnapshotName)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return f, nil
	}

	var snap favoritesSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errs.NewDatabaseError("read", "corrupt favorites snapshot", err)
	}
	f.ids = snap.Favorites
	return f, nil
}

// Toggle adds serviceID if absent, removes it if present, and returns the
// resulting membership.
func (f *Favorites) Toggle(ctx context.Context, serviceID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, id := range f.ids {
		if id == serviceID {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			f.persistLocked(ctx)
			return false
		}
	}
	f.ids = append(f.ids, serviceID)
	f.persistLocked(ctx)
	return true
}

func (f *Favorites) IsFavorite(serviceID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range f.ids {
		if id == serviceID {
			return true
		}
	}
	return false
}

// List returns the favorite ids in insertion order.
func (f *Favorites) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

func (f *Favorites) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(favoritesSnapshot{Favorites: f.ids})
	if err == nil {
		err = f.store.Put(ctx, favoritesSnapshotName, raw)
	}
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn("failed to persist favorites snapshot", "error", err)
	}
}
