package config

import (
	"sync"

	"github.com/jinzhu/copier"
)

// Store holds the live configuration edited by the viewer. Every edit bumps
// the revision; readers poll Revision and take a Snapshot when it moves.
type Store struct {
	mu       sync.Mutex
	cfg      Cactus
	revision uint64
}

// NewStore returns a store holding a clamped copy of c at revision 1.
func NewStore(c Cactus) *Store {
	c.Clamp()
	return &Store{cfg: c, revision: 1}
}

// Snapshot returns a deep copy of the current config and its revision.
func (s *Store) Snapshot() (Cactus, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out Cactus
	if err := copier.CopyWithOption(&out, &s.cfg, copier.Option{DeepCopy: true}); err != nil {
		return s.cfg, s.revision
	}
	return out, s.revision
}

// Revision returns the number of the latest edit.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Update applies fn to a working copy. If the result validates it replaces
// the current config and the revision advances; otherwise the store is
// unchanged and the validation error is returned.
func (s *Store) Update(fn func(*Cactus)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	next.Clamp()
	s.cfg = next
	s.revision++
	return nil
}

// Replace swaps in c wholesale, e.g. after loading a file.
func (s *Store) Replace(c Cactus) {
	c.Clamp()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = c
	s.revision++
}

func (s *Store) current() Cactus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}
