package ledger

import (
	"testing"

	"github.com/bancotempo/timebank-backend/pkg/helpers"
)

func TestFavoritesToggle(t *testing.T) {
	ctx := helpers.TestCtx()
	store := newStubSnapshotStore()

	f, err := NewFavorites(ctx, store)
	if err != nil {
		t.Fatalf("NewFavorites returned error: %v", err)
	}

	if f.IsFavorite("svc-1") {
		t.Fatalf("fresh favorites reported svc-1 as starred")
	}

	if got := f.Toggle(ctx, "svc-1"); !got {
		t.Fatalf("first toggle returned %v, want true", got)
	}
	if !f.IsFavorite("svc-1") {
		t.Fatalf("svc-1 not starred after toggle")
	}

	if got := f.Toggle(ctx, "svc-1"); got {
		t.Fatalf("second toggle returned %v, want false", got)
	}
	if f.IsFavorite("svc-1") {
		t.Fatalf("svc-1 still starred after second toggle")
	}
}

func TestFavoritesPersistAcrossRestores(t *testing.T) {
	ctx := helpers.TestCtx()
	store := newStubSnapshotStore()

	f, err := NewFavorites(ctx, store)
	if err != nil {
		t.Fatalf("NewFavorites returned error: %v", err)
	}
	f.Toggle(ctx, "svc-1")
	f.Toggle(ctx, "svc-2")
	f.Toggle(ctx, "svc-1")

	restored, err := NewFavorites(ctx, store)
	if err != nil {
		t.Fatalf("NewFavorites on existing snapshot returned error: %v", err)
	}

	ids := restored.List()
	if len(ids) != 1 || ids[0] != "svc-2" {
		t.Fatalf("restored favorites = %v, want [svc-2]", ids)
	}
}
