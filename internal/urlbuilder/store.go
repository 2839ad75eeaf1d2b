package urlbuilder

import "imglab-urls/internal/imglab"

// Store is the persistence abstraction for registered sources.
// The Repository guards every call with its own lock; implementations
// do not need to be safe for concurrent use.
type Store interface {
	GetSource(name SourceName) (imglab.Source, bool)
	SetSource(src imglab.Source)
	ListSourceNames() []SourceName
}

// InMemoryStore is an in-memory implementation of Store.
type InMemoryStore struct {
	sources map[SourceName]imglab.Source
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sources: make(map[SourceName]imglab.Source),
	}
}

// GetSource implements Store.GetSource.
func (s *InMemoryStore) GetSource(name SourceName) (imglab.Source, bool) {
	src, ok := s.sources[name]
	return src, ok
}

// SetSource implements Store.SetSource.
func (s *InMemoryStore) SetSource(src imglab.Source) {
	s.sources[SourceName(src.Name())] = src
}

// ListSourceNames implements Store.ListSourceNames.
func (s *InMemoryStore) ListSourceNames() []SourceName {
	names := make([]SourceName, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	return names
}
