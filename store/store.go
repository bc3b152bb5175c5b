// Package store is the flat JSON persistence layer. Every domain is one
// whole document on disk: reads re-parse the full file, writes rewrite it
// entirely. There is no partial update primitive; callers sequence their
// own read-modify-write through Update, which serializes access per domain.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New opens a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the root data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) domainLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a whole domain document into out. A missing file is first-run
// state: out is left untouched (callers pass an empty map). A malformed
// document is quarantined next to the original so no data is silently lost,
// and the parse error is returned.
func (s *Store) Load(name string, out interface{}) error {
	l := s.domainLock(name)
	l.Lock()
	defer l.Unlock()
	return s.load(name, out)
}

// Save rewrites a whole domain document.
func (s *Store) Save(name string, in interface{}) error {
	l := s.domainLock(name)
	l.Lock()
	defer l.Unlock()
	return s.save(name, in)
}

// Update runs one read-modify-write cycle under the domain lock: it loads
// the document into doc, applies fn, and persists doc only if fn returned
// nil. Concurrent updates to the same domain never lose each other's writes.
func (s *Store) Update(name string, doc interface{}, fn func() error) error {
	l := s.domainLock(name)
	l.Lock()
	defer l.Unlock()

	if err := s.load(name, doc); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.save(name, doc)
}

func (s *Store) load(name string, out interface{}) error {
	raw, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		quarantined := s.quarantine(name)
		log.Errorf("Corrupt document %s quarantined to %s: %v", name, quarantined, err)
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(name string, in interface{}) error {
	raw, err := json.MarshalIndent(in, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// quarantine moves an unreadable document aside and returns the new path.
func (s *Store) quarantine(name string) string {
	src := s.path(name)
	dst := fmt.Sprintf("%s.corrupt-%d", src, time.Now().Unix())
	if err := os.Rename(src, dst); err != nil {
		log.Errorf("Could not quarantine %s: %v", src, err)
		return src
	}
	return dst
}
