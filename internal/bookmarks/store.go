// Package bookmarks implements the on-disk bookmark store: a name to
// directory-path mapping persisted as a single JSON file.
package bookmarks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when a bookmark name is absent from the store.
	ErrNotFound = errors.New("bookmark not found")

	// ErrInvalidDirectory is returned when the target of an add does not
	// exist or is not a directory.
	ErrInvalidDirectory = errors.New("directory does not exist")
)

// Bookmark is a single name to directory-path association.
type Bookmark struct {
	Name string
	Path string
}

// Store persists bookmarks in a single JSON file. The file on disk is the
// sole source of truth: every operation reloads it, mutates the mapping and
// rewrites the whole file. Nothing is cached between invocations.
type Store struct {
	fs   afero.Fs
	path string
	home string
}

// New creates a store backed by the given filesystem and file path. The home
// directory is used to expand a leading "~" when adding bookmarks.
func New(fs afero.Fs, path, home string) *Store {
	return &Store{fs: fs, path: path, home: home}
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the bookmark mapping from disk. A missing file yields an empty
// mapping. An unreadable or unparseable file is reported and treated as
// empty; the next successful save overwrites it. Load never fails.
func (s *Store) Load(ctx context.Context) map[string]string {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("path", s.path).
				Msg("bookmarks file unreadable, treating store as empty")
		}
		return map[string]string{}
	}

	bookmarks := map[string]string{}
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", s.path).
			Msg("bookmarks file is corrupted, treating store as empty")
		return map[string]string{}
	}
	return bookmarks
}

// Save writes the full mapping back to the store file, overwriting any
// previous contents. I/O errors propagate to the caller; there is no
// recovery path for an unwritable store file.
func (s *Store) Save(ctx context.Context, bookmarks map[string]string) error {
	data, err := json.MarshalIndent(bookmarks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bookmarks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write bookmarks file %s: %w", s.path, err)
	}

	zerolog.Ctx(ctx).Debug().Int("count", len(bookmarks)).Str("path", s.path).
		Msg("saved bookmarks")
	return nil
}

// Add resolves rawPath and stores it under name, overwriting silently if the
// name already exists. The path is expanded (leading "~", environment
// variables) and must refer to an existing directory; otherwise
// ErrInvalidDirectory is returned and the store file is left untouched.
// Returns the absolute path that was stored.
func (s *Store) Add(ctx context.Context, name, rawPath string) (string, error) {
	expanded := s.expandPath(rawPath)

	info, err := s.fs.Stat(expanded)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInvalidDirectory, expanded)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", expanded, err)
	}

	bookmarks := s.Load(ctx)
	bookmarks[name] = abs
	if err := s.Save(ctx, bookmarks); err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Info().Str("name", name).Str("path", abs).Msg("added bookmark")
	return abs, nil
}

// Delete removes name from the store. A miss returns ErrNotFound and
// performs no save.
func (s *Store) Delete(ctx context.Context, name string) error {
	bookmarks := s.Load(ctx)
	if _, ok := bookmarks[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	delete(bookmarks, name)
	if err := s.Save(ctx, bookmarks); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("name", name).Msg("deleted bookmark")
	return nil
}

// Resolve returns the path stored under name, exactly as it was stored.
// The directory is not re-validated; the navigation wrapper relies on the
// returned string being byte-identical to what Add recorded.
func (s *Store) Resolve(ctx context.Context, name string) (string, error) {
	bookmarks := s.Load(ctx)
	path, ok := bookmarks[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// List returns all bookmarks sorted lexicographically by name. An empty
// slice means the store has no entries; that is not an error.
func (s *Store) List(ctx context.Context) []Bookmark {
	bookmarks := s.Load(ctx)

	entries := make([]Bookmark, 0, len(bookmarks))
	for name, path := range bookmarks {
		entries = append(entries, Bookmark{Name: name, Path: path})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// expandPath expands a leading "~" to the home directory, then environment
// variable references. Order matches the original tool: home first, then vars.
func (s *Store) expandPath(raw string) string {
	switch {
	case raw == "~":
		raw = s.home
	case strings.HasPrefix(raw, "~/"):
		raw = filepath.Join(s.home, raw[2:])
	}
	return os.ExpandEnv(raw)
}
