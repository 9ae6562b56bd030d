package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cross-bloomfilter/bloom"

	"github.com/edsrzf/mmap-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const fileExt = ".bf"

var (
	ErrNotFound    = fmt.Errorf("filter not found: %w", os.ErrNotExist)
	ErrInvalidName = errors.New("invalid filter name")
)

// Store keeps named filter dumps in a directory, one file per filter.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

type Option func(*Store)

func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

func Open(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	s := &Store{dir: dir, log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Dir() string { return s.dir }

// Put writes the dump of f under name, replacing any previous version
// atomically.
func (s *Store) Put(name string, f *bloom.Filter, compress bool) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	// A dump that cannot be read back is never written.
	if err := bloom.CheckReloadable(f.Capacity(), f.ErrorRate()); err != nil {
		return fmt.Errorf("failed to save filter %s: %w", name, err)
	}

	dump, err := f.Dump(compress)
	if err != nil {
		return fmt.Errorf("failed to dump filter %s: %w", name, err)
	}

	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := writeFileSync(tmpPath, dump); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write filter %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename filter file: %w", err)
	}

	s.log.Debugw("saved filter", "name", name, "bytes", len(dump), "gzip", compress)
	return nil
}

// Get loads the filter stored under name.
func (s *Store) Get(name string) (*bloom.Filter, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open filter %s: %w", name, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file stats: %w", err)
	}
	// Zero-length files cannot be mapped; the codec rejects them as short.
	var data []byte
	if stat.Size() > 0 {
		m, err := mmap.Map(file, mmap.RDONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to mmap filter %s: %w", name, err)
		}
		defer m.Unmap()
		data = m
	}

	f, err := bloom.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load filter %s: %w", name, err)
	}
	return f, nil
}

// Has reports whether a filter is stored under name.
func (s *Store) Has(name string) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// List returns the stored filter names in sorted order.
func (s *Store) List() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*"+fileExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan filter files: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(filepath.Base(f), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads every stored filter and returns the scanned names in
// sorted order. Unreadable entries are logged, listed in names and left out
// of filters.
func (s *Store) LoadAll() (names []string, filters map[string]*bloom.Filter, err error) {
	names, err = s.List()
	if err != nil {
		return nil, nil, err
	}
	filters = make(map[string]*bloom.Filter, len(names))
	for _, name := range names {
		f, err := s.Get(name)
		if err != nil {
			s.log.Warnw("skipping filter due to load error", "name", name, "error", err)
			continue
		}
		filters[name] = f
	}
	return names, filters, nil
}

func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return fmt.Errorf("failed to delete filter %s: %w", name, err)
	}
	s.log.Debugw("deleted filter", "name", name)
	return nil
}

func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+fileExt), nil
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
