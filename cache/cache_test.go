package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open cache: %s", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestPutGet(t *testing.T) {
	store := openTestStore(t)

	if _, ok := store.Get("https://pokeapi.co/api/v2/pokemon/pikachu", 0); ok {
		t.Fatalf("empty cache returned a hit")
	}

	if err := store.Put("https://pokeapi.co/api/v2/pokemon/pikachu", []byte(`{"name":"pikachu"}`)); err != nil {
		t.Fatalf("failed to put: %s", err)
	}

	body, ok := store.Get("https://pokeapi.co/api/v2/pokemon/pikachu", time.Hour)
	if !ok || string(body) != `{"name":"pikachu"}` {
		t.Fatalf("expected cached body, got %q (hit: %v)", body, ok)
	}

	if err := store.Put("https://pokeapi.co/api/v2/pokemon/pikachu", []byte(`{"name":"raichu"}`)); err != nil {
		t.Fatalf("failed to replace: %s", err)
	}

	body, _ = store.Get("https://pokeapi.co/api/v2/pokemon/pikachu", 0)
	if string(body) != `{"name":"raichu"}` {
		t.Fatalf("put should replace old bodies, got %q", body)
	}

	if count, err := store.Len(); err != nil || count != 1 {
		t.Fatalf("expected 1 cached response, got %d (%v)", count, err)
	}
}

func TestExpiredEntriesMiss(t *testing.T) {
	store := openTestStore(t)

	old := time.Now().UTC().Add(-48 * time.Hour).Format(timeLayout)
	if _, err := store.sql.Exec("INSERT INTO responses (url, body, fetched_at) VALUES (?, ?, ?)", "old", []byte("{}"), old); err != nil {
		t.Fatalf("failed to insert old entry: %s", err)
	}

	if _, ok := store.Get("old", 24*time.Hour); ok {
		t.Fatalf("entry older than max age should miss")
	}

	if _, ok := store.Get("old", 0); !ok {
		t.Fatalf("max age of 0 should accept old entries")
	}

	if err := store.Put("new", []byte("{}")); err != nil {
		t.Fatalf("failed to put: %s", err)
	}

	removed, err := store.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("failed to prune: %s", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 pruned entry, got %d", removed)
	}

	if _, ok := store.Get("new", 0); !ok {
		t.Fatalf("prune removed a fresh entry")
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open cache: %s", err)
	}
	if err := store.Put("https://pokeapi.co/api/v2/type/fire", []byte(`{"name":"fire"}`)); err != nil {
		t.Fatalf("failed to put: %s", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("failed to reopen cache: %s", err)
	}
	defer store.Close()

	if _, ok := store.Get("https://pokeapi.co/api/v2/type/fire", 0); !ok {
		t.Fatalf("entry was lost after reopening")
	}
}
