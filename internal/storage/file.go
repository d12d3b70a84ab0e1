package storage

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// File stores each key as <dir>/<key>.json, replaced atomically on every write.
// The revision hashes the file's modification time together with its content,
// so a rewrite inside one mtime tick (whole seconds on some filesystems) is
// still detected unless it wrote identical bytes.
type File struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*File, error) {
	dir = filepath.Clean(strings.TrimSpace(dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &File{dir: dir}, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

func (f *File) fileName(key string) string {
	return unsafeKeyChars.ReplaceAllString(key, "_") + ".json"
}

func (f *File) Path(key string) string {
	return filepath.Join(f.dir, f.fileName(key))
}

func (f *File) Get(_ context.Context, key string) (Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(key)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Value: b, Revision: fileRevision(fi, b)}, nil
}

func (f *File) Put(_ context.Context, key string, value []byte, expected int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(key)
	current, err := os.ReadFile(path)
	switch {
	case err == nil:
		fi, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		if expected == 0 || fileRevision(fi, current) != expected {
			return 0, ErrRevisionConflict
		}
	case os.IsNotExist(err):
		if expected != 0 {
			return 0, ErrRevisionConflict
		}
	default:
		return 0, err
	}

	if err := writeFileAtomic(f.dir, f.fileName(key), value); err != nil {
		return 0, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fileRevision(fi, value), nil
}

// fileRevision is a positive, non-zero digest of mtime and content.
func fileRevision(fi os.FileInfo, content []byte) int64 {
	h := fnv.New64a()
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(fi.ModTime().UnixNano()))
	_, _ = h.Write(ts[:])
	_, _ = h.Write(content)
	rev := int64(h.Sum64() & math.MaxInt64)
	if rev == 0 {
		rev = 1
	}
	return rev
}

func (f *File) Close() error {
	return nil
}

// writeFileAtomic writes to a temp file in dir and renames it over name.
func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := writeAll(tmp, data); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		return err
	}

	_ = syncDir(dir)
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
