package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/parse"
)

// File is a document stored on disk. Its methods are safe for
// concurrent use.
type File struct {
	path string
	opts []parse.ParseOption

	mu   sync.RWMutex
	tree *Tree
}

// Open reads the document at path. A missing file opens as an empty
// document and is created by the first Save.
func Open(path string, opts ...parse.ParseOption) (*File, error) {
	f := &File{path: path, opts: opts}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

// Reload replaces the in-memory document with the file's contents,
// dropping unsaved changes.
func (f *File) Reload() error {
	d, err := os.ReadFile(f.path)
	var tree *Tree
	switch {
	case errors.Is(err, fs.ErrNotExist):
		tree, err = ParseBytes(nil, f.opts...)
	case err != nil:
		return err
	default:
		tree, err = ParseBytes(d, f.opts...)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tree = tree
	return nil
}

// Get is like [ir.Node.Get]. A returned *ir.Node must only be read
// while no Set is running; use View for longer reads.
func (f *File) Get(path string, def any) any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.Get(path, def)
}

func (f *File) GetString(path, def string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.GetString(path, def)
}

func (f *File) Has(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.Has(path)
}

func (f *File) Set(path, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tree.Set(path, value)
}

func (f *File) Dirty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.Dirty()
}

func (f *File) Format() format.Format {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.Format
}

func (f *File) Source() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.Source()
}

// View calls fn with the tree under a read lock.
func (f *File) View(fn func(*Tree) error) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return fn(f.tree)
}

// Update calls fn with the tree under the write lock.
func (f *File) Update(fn func(*Tree) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.tree)
}

// Save writes the document if it has changes. The file is replaced
// atomically and the saved text becomes the new clean state.
func (f *File) Save() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tree.Dirty() {
		return nil
	}
	src := f.tree.Source()
	tree, err := Parse(src, f.opts...)
	if err != nil {
		return fmt.Errorf("%s: re-reading saved document: %w", f.path, err)
	}
	if err := writeFile(f.path, []byte(src)); err != nil {
		return err
	}
	f.tree = tree
	return nil
}

func writeFile(path string, d []byte) error {
	perm := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	if _, err := tmp.Write(d); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Node resolves path under a read lock.
func (f *File) Node(path string) (*ir.Node, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tree.Lookup(path)
}
