package javadoc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store manages the javadoc archives found in one directory.
//
// Archives are registered by Scan and opened lazily on first Get,
// keyed case-insensitively by file stem and, once opened, by the
// descriptor's library name as well. Concurrent Gets for the same
// archive are deduplicated so each archive is opened at most once.
type Store struct {
	dir    string
	logger *slog.Logger

	mu    sync.RWMutex
	paths map[string]string   // key -> archive path
	libs  map[string]*Library // key -> opened handle

	group singleflight.Group
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for debug output.
// The logger is also passed to every Library the store opens.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a store over the given directory.
// Call Scan before the first Get.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{
		dir:   dir,
		paths: make(map[string]string),
		libs:  make(map[string]*Library),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// log returns the logger, falling back to a discard logger if nil.
func (s *Store) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}

// Scan registers every ".zip" file directly under the store directory.
//
// Archives are not opened; Get opens them on demand. Scan may be
// called again to pick up new files. Previously opened handles are
// kept.
func (s *Store) Scan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", s.dir, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".zip") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		s.paths[strings.ToLower(stem)] = filepath.Join(s.dir, e.Name())
		count++
	}
	s.log().Debug("scanned archives", "dir", s.dir, "count", count)
	return nil
}

// Get returns the library registered under name (case-insensitive).
//
// The archive is opened on first access; later calls return the same
// handle. An unregistered name yields (nil, nil).
func (s *Store) Get(name string) (*Library, error) {
	key := strings.ToLower(name)

	s.mu.RLock()
	lib, opened := s.libs[key]
	path, registered := s.paths[key]
	s.mu.RUnlock()

	if opened {
		return lib, nil
	}
	if !registered {
		return nil, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Double-check under the write path: an earlier flight may have
		// opened the archive already.
		s.mu.RLock()
		l, ok := s.libs[key]
		s.mu.RUnlock()
		if ok {
			return l, nil
		}

		var opts []Option
		if s.logger != nil {
			opts = append(opts, WithLogger(s.logger))
		}
		l, err := Open(path, opts...)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.libs[key] = l
		if libName, ok := l.Name(); ok {
			s.libs[strings.ToLower(libName)] = l
		}
		s.mu.Unlock()
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Library), nil //nolint:errcheck // type assertion always succeeds when err is nil
}

// Names returns the sorted registration keys of all scanned archives.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.paths))
	for name := range s.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
