package content

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
)

// Store holds the portfolio currently being served. Readers never block;
// Replace and Reload publish a new value and notify listeners.
type Store struct {
	current atomic.Pointer[Portfolio]

	fs   afero.Fs
	path string

	mu        sync.Mutex
	listeners []func(*Portfolio)
}

// NewStore creates a store serving a fixed portfolio.
func NewStore(initial *Portfolio) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// NewFileStore creates a store backed by a content file, loading it once.
func NewFileStore(fs afero.Fs, path string) (*Store, error) {
	p, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	s := &Store{fs: fs, path: path}
	s.current.Store(p)
	return s, nil
}

// Current returns the portfolio being served.
func (s *Store) Current() *Portfolio {
	return s.current.Load()
}

// Path returns the backing content file, or "" for a fixed store.
func (s *Store) Path() string {
	return s.path
}

// OnChange registers fn to be called after every successful swap.
func (s *Store) OnChange(fn func(*Portfolio)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Replace swaps in p and notifies listeners.
func (s *Store) Replace(p *Portfolio) {
	s.current.Store(p)

	s.mu.Lock()
	listeners := make([]func(*Portfolio), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}

// Reload re-reads the backing file. On error the previous portfolio stays in
// place. A fixed store has nothing to reload.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	p, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.Replace(p)
	slog.Info("Portfolio content reloaded", "path", s.path)
	return nil
}
