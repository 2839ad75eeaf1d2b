package urlbuilder

import (
	"fmt"

	"imglab-urls/internal/imglab"
)

// MaxSequenceSize caps the element count accepted by Service.Sequence.
const MaxSequenceSize = 1024

// Service resolves source names through a Repository and delegates URL
// construction to the imglab core.
type Service struct {
	repo Repository
}

// NewService returns a Service that looks sources up in repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// URL builds a single URL for path on the named source.
func (s *Service) URL(name SourceName, path string, params *imglab.Params) (string, error) {
	src, err := s.source(name)
	if err != nil {
		return "", err
	}
	return imglab.URL(src, path, params)
}

// Srcset builds a srcset for path on the named source.
func (s *Service) Srcset(name SourceName, path string, params *imglab.Params) (string, error) {
	src, err := s.source(name)
	if err != nil {
		return "", err
	}
	return imglab.Srcset(src, path, params)
}

// Sequence returns the geometric sequence between first and last.
// size defaults to imglab.SequenceDefaultSize when zero.
func (s *Service) Sequence(first, last, size int) ([]int, error) {
	if size == 0 {
		size = imglab.SequenceDefaultSize
	}
	if size < 0 || size > MaxSequenceSize {
		return nil, fmt.Errorf("%w: size %d outside 1..%d", imglab.ErrMalformedRange, size, MaxSequenceSize)
	}
	if first <= 0 || last <= 0 {
		return nil, fmt.Errorf("%w: %d..%d", imglab.ErrMalformedRange, first, last)
	}
	return imglab.Sequence(first, last, size), nil
}

// Sources returns the registered source names.
func (s *Service) Sources() []SourceName {
	return s.repo.Names()
}

func (s *Service) source(name SourceName) (imglab.Source, error) {
	src, ok := s.repo.Source(name)
	if !ok {
		return imglab.Source{}, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}
	return src, nil
}
