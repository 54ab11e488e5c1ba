package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/acmgallery/gallery/pkg/gallery"
)

func TestMemoryStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := Key{SessionID: "visitor"}

	state := NewViewState(time.Minute)
	state.CarouselIndex = 2
	state.ActiveFilter = gallery.FilterContests

	if err := store.Save(ctx, key, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CarouselIndex != 2 || loaded.ActiveFilter != gallery.FilterContests {
		t.Errorf("Loaded state %+v does not match saved state", loaded)
	}

	// Mutating the loaded copy must not change the stored state
	loaded.CarouselIndex = 0
	again, err := store.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if again.CarouselIndex != 2 {
		t.Errorf("Stored state changed through loaded copy: %d", again.CarouselIndex)
	}
}

func TestMemoryStore_Miss(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), Key{SessionID: "missing"})
	if err != ErrStateMiss {
		t.Errorf("Expected ErrStateMiss, got %v", err)
	}
}

func TestMemoryStore_Expired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := Key{SessionID: "old"}

	// Expired state is not stored
	if err := store.Save(ctx, key, &ViewState{Expires: time.Now().Add(-time.Second)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expired state should not be stored, have %d", store.Len())
	}

	// State that expires after saving is dropped on load
	if err := store.Save(ctx, key, &ViewState{Expires: time.Now().Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	time.Sleep(40 * time.Millisecond)

	if _, err := store.Load(ctx, key); err != ErrStateMiss {
		t.Errorf("Expected ErrStateMiss for expired state, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expired state should be removed on load, have %d", store.Len())
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, Key{SessionID: "a"}, &ViewState{Expires: time.Now().Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, Key{SessionID: "b"}, NewViewState(time.Hour)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	time.Sleep(40 * time.Millisecond)

	if removed := store.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 remaining state, got %d", store.Len())
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := Key{SessionID: "gone"}

	if err := store.Save(ctx, key, NewViewState(time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, key); err != ErrStateMiss {
		t.Errorf("Expected ErrStateMiss after Delete, got %v", err)
	}
}

func TestMemoryStore_NilState(t *testing.T) {
	if err := NewMemoryStore().Save(context.Background(), Key{SessionID: "x"}, nil); err == nil {
		t.Error("Expected error for nil state")
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Key{SessionID: string(rune('a' + i))}
			state := NewViewState(time.Minute)
			state.CarouselIndex = i
			if err := store.Save(ctx, key, state); err != nil {
				t.Errorf("Save failed: %v", err)
			}
			if _, err := store.Load(ctx, key); err != nil {
				t.Errorf("Load failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != 20 {
		t.Errorf("Expected 20 states, got %d", store.Len())
	}
}
