package urlbuilder

import (
	"testing"

	"imglab-urls/internal/imglab"
)

func mustSource(t *testing.T, name string, opts ...imglab.SourceOption) imglab.Source {
	t.Helper()
	src, err := imglab.NewSource(name, opts...)
	if err != nil {
		t.Fatalf("NewSource(%q): %v", name, err)
	}
	return src
}

func TestInMemoryStore_GetSetSource(t *testing.T) {
	store := NewInMemoryStore()

	if _, ok := store.GetSource("assets"); ok {
		t.Error("expected not found for empty store")
	}

	src := mustSource(t, "assets")
	store.SetSource(src)

	got, ok := store.GetSource("assets")
	if !ok || got.Name() != "assets" {
		t.Errorf("GetSource: ok=%v, name=%q", ok, got.Name())
	}
}

func TestInMemoryStore_SetSource_replaces(t *testing.T) {
	store := NewInMemoryStore()
	store.SetSource(mustSource(t, "assets"))
	store.SetSource(mustSource(t, "assets", imglab.WithHost("imglab.net")))

	got, _ := store.GetSource("assets")
	if got.Host() != "assets.imglab.net" {
		t.Errorf("SetSource should replace: host %q", got.Host())
	}
	if n := len(store.ListSourceNames()); n != 1 {
		t.Errorf("expected 1 name, got %d", n)
	}
}

func TestNewInMemoryRepositoryWithStore(t *testing.T) {
	store := NewInMemoryStore()
	repo := NewInMemoryRepositoryWithStore(store)

	if err := repo.Register(mustSource(t, "assets")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// State should be in the store we injected
	if _, ok := store.GetSource("assets"); !ok {
		t.Error("injected store should contain source after Register")
	}
}
