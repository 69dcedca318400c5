// Package memory is an in-process collection provider. Nothing survives Close.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/quantumlife/internal/collection"
)

type Store struct {
	mu   sync.RWMutex
	docs map[string][]collection.Document
	now  func() time.Time
}

func New() *Store {
	return &Store{docs: map[string][]collection.Document{}, now: time.Now}
}

func (s *Store) Init() error  { return nil }
func (s *Store) Load() error  { return nil }
func (s *Store) Close() error { return nil }

func (s *Store) GetConfigPath() string {
	return "memory"
}

func (s *Store) ListAll(ctx context.Context, name string, filter collection.Filter, opts collection.Options) (collection.Result, error) {
	if err := collection.ValidateName(name); err != nil {
		return collection.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return collection.Result{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]collection.Document, len(s.docs[name]))
	for i, d := range s.docs[name] {
		docs[i] = d.Clone()
	}
	return collection.Collect(docs, filter, opts), nil
}

func (s *Store) Create(ctx context.Context, name string, doc collection.Document) (collection.Document, error) {
	if err := collection.ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := doc.ID()
	if id == "" {
		return nil, collection.ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(name, id) >= 0 {
		return nil, fmt.Errorf("%s %q: %w", name, id, collection.ErrConflict)
	}
	now := s.now().UTC()
	stored := doc.Body().Stamp(id, now, now)
	s.docs[name] = append(s.docs[name], stored)
	return stored.Clone(), nil
}

func (s *Store) Update(ctx context.Context, name string, partial collection.Document) (collection.Document, error) {
	if err := collection.ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := partial.ID()
	if id == "" {
		return nil, collection.ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name, id)
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", name, id, collection.ErrNotFound)
	}
	merged := s.docs[name][i].Merge(partial)
	merged[collection.FieldUpdatedAt] = s.now().UTC().Format(time.RFC3339Nano)
	s.docs[name][i] = merged
	return merged.Clone(), nil
}

func (s *Store) Delete(ctx context.Context, name string, id string) error {
	if err := collection.ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name, id)
	if i < 0 {
		return fmt.Errorf("%s %q: %w", name, id, collection.ErrNotFound)
	}
	s.docs[name] = append(s.docs[name][:i], s.docs[name][i+1:]...)
	return nil
}

func (s *Store) indexOf(name, id string) int {
	for i, d := range s.docs[name] {
		if d.ID() == id {
			return i
		}
	}
	return -1
}
