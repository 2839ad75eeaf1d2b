package urlbuilder

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"imglab-urls/internal/imglab"
)

// Repository defines the concurrency-safe contract for the source registry.
type Repository interface {
	// Register adds src under its name. Registering a name twice returns
	// ErrDuplicateSource and keeps the first source.
	Register(src imglab.Source) error

	// Source returns the source registered under name.
	Source(name SourceName) (imglab.Source, bool)

	// Names returns the registered names sorted ascending.
	Names() []SourceName

	// Count returns the number of registered sources. Used for metrics.
	Count() int
}

var (
	// ErrSourceNotFound is returned when no source is registered under a name.
	// It matches imglab.ErrInvalidSource as well.
	ErrSourceNotFound = fmt.Errorf("%w: source not found", imglab.ErrInvalidSource)

	// ErrDuplicateSource is returned when registering a name that already exists.
	ErrDuplicateSource = errors.New("source already registered")
)

// InMemoryRepository is a concurrency-safe Repository backed by a Store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store Store
}

// NewInMemoryRepository constructs a new repository with a default in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithStore(NewInMemoryStore())
}

// NewInMemoryRepositoryWithStore constructs a repository that uses the given Store.
func NewInMemoryRepositoryWithStore(store Store) *InMemoryRepository {
	return &InMemoryRepository{store: store}
}

// Register implements Repository.Register.
func (r *InMemoryRepository) Register(src imglab.Source) error {
	if src.Name() == "" {
		return fmt.Errorf("%w: empty name", imglab.ErrInvalidSource)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := SourceName(src.Name())
	if _, exists := r.store.GetSource(name); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSource, name)
	}
	r.store.SetSource(src)
	return nil
}

// Source implements Repository.Source.
func (r *InMemoryRepository) Source(name SourceName) (imglab.Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.GetSource(name)
}

// Names implements Repository.Names.
func (r *InMemoryRepository) Names() []SourceName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.store.ListSourceNames()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Count implements Repository.Count.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.store.ListSourceNames())
}
