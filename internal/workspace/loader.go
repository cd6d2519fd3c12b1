package workspace

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultCacheSize is how many files the loader keeps in memory.
	DefaultCacheSize = 64
	maxFileSize      = 10 * 1024 * 1024 // 10 MB
)

var (
	// ErrNotFound is returned for files that do not exist.
	ErrNotFound = errors.New("file not found")
	// ErrTooLarge is returned for files above the size limit.
	ErrTooLarge = errors.New("file too large")
)

// Loader reads files as lines and keeps recently read ones cached, so
// walking back and forth between files does not re-read them. A cached
// file whose size or modification time changed is read again.
type Loader struct {
	cache *lru.Cache[string, cachedFile]
}

type cachedFile struct {
	lines   []string
	size    int64
	modTime time.Time
}

// NewLoader creates a loader caching up to size files.
func NewLoader(size int) (*Loader, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, cachedFile](size)
	if err != nil {
		return nil, fmt.Errorf("creating file cache: %w", err)
	}
	return &Loader{cache: cache}, nil
}

// Load returns the lines of the file at path.
func (l *Loader) Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("reading %s: is a directory", path)
	}

	if f, ok := l.cache.Get(path); ok && f.size == info.Size() && f.modTime.Equal(info.ModTime()) {
		return f.lines, nil
	}

	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := splitLines(string(data))
	l.cache.Add(path, cachedFile{lines: lines, size: info.Size(), modTime: info.ModTime()})
	return lines, nil
}

// Invalidate drops path from the cache.
func (l *Loader) Invalidate(path string) {
	l.cache.Remove(path)
}

// Exists reports whether path is still a regular file on disk.
func (l *Loader) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Cached returns the number of files held in the cache.
func (l *Loader) Cached() int {
	return l.cache.Len()
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
