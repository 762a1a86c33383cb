// Package local provides the host-filesystem backend. Paths are used as
// given; the router decides which paths reach this backend.
package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	condor2nav "github.com/flyasky/Condor2Nav"
)

// Adapter provides a local filesystem implementation of condor2nav.Backend.
type Adapter struct{}

// New creates a new local filesystem adapter
func New() *Adapter {
	return &Adapter{}
}

// Read returns the full contents of the file at path. The read resolves
// from inside the file's containing directory: the process working
// directory is switched there and restored on every exit path, success or
// failure, so no directory state leaks into later operations.
func (a *Adapter) Read(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dir, file := condor2nav.SplitPath(path)
	if dir != "" {
		prev, err := os.Getwd()
		if err != nil {
			return nil, &condor2nav.PathError{Op: "read", Path: path, Err: err}
		}
		if err := os.Chdir(dir); err != nil {
			return nil, readError(path, err)
		}
		// Restoration is best effort and never masks the read error.
		defer os.Chdir(prev) //nolint:errcheck
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, readError(path, err)
	}
	return data, nil
}

// CreateDir creates a single directory level. A directory that already
// exists is success; any other failure carries the native reason.
func (a *Adapter) CreateDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.Mkdir(path, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return &condor2nav.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// FileExists reports whether path can be opened for reading. "Not found"
// and "exists but unreadable" both report false.
func (a *Adapter) FileExists(ctx context.Context, path string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Watch implements condor2nav.CanWatch using fsnotify. The filter's
// directory part selects the watched directory (no glob characters allowed
// there); its file part is a glob matched against changed file names. The
// returned token is spent after the first matching change.
func (a *Adapter) Watch(ctx context.Context, filter string) (condor2nav.ChangeToken, error) {
	dir, pattern := condor2nav.SplitPath(filter)
	dir = strings.TrimRight(dir, `\/`)
	if dir == "" {
		dir = "."
	}
	if strings.ContainsAny(dir, "*?[") {
		return nil, &condor2nav.PathError{Op: "watch", Path: filter, Err: condor2nav.ErrNotSupported}
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, &condor2nav.PathError{Op: "watch", Path: filter, Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &condor2nav.PathError{Op: "watch", Path: filter, Err: err}
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, &condor2nav.PathError{Op: "watch", Path: filter, Err: err}
	}

	token := condor2nav.NewCallbackChangeToken()

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				_, name := condor2nav.SplitPath(event.Name)
				if g.Match(name) {
					token.SignalChange()
					return // Token is spent after the first change
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching after a transient watcher error.
			}
		}
	}()

	return token, nil
}

func readError(path string, err error) error {
	if os.IsNotExist(err) {
		return &condor2nav.PathError{Op: "read", Path: path, Err: condor2nav.ErrNotExist}
	}
	return &condor2nav.PathError{Op: "read", Path: path, Err: err}
}

var (
	_ condor2nav.Backend  = (*Adapter)(nil)
	_ condor2nav.CanWatch = (*Adapter)(nil)
)
