// Package memchan provides an in-memory implementation of the device-sync
// channel contract. It stands in for a paired device in tests and lets the
// translator run without one.
package memchan

import (
	"fmt"
	"strings"
	"sync"

	condor2nav "github.com/flyasky/Condor2Nav"
)

// Channel is an in-memory condor2nav.Channel. Unlike a real device bridge
// it is safe for concurrent use.
type Channel struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// New creates an empty in-memory channel.
func New() *Channel {
	return &Channel{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// Read returns the contents of the file at path. A missing file reports
// condor2nav.ErrNotExist.
func (c *Channel) Read(path string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := c.files[normalize(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", condor2nav.ErrNotExist, path)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// DirectoryCreate creates a single directory level. Creating a directory
// that already exists is success.
func (c *Channel) DirectoryCreate(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dirs[normalize(path)] = true
	return nil
}

// FileExists reports whether a file exists at path.
func (c *Channel) FileExists(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.files[normalize(path)]
	return ok
}

// Put stores a file on the device, creating it or replacing its contents.
func (c *Channel) Put(path string, data []byte) {
	stored := make([]byte, len(data))
	copy(stored, data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[normalize(path)] = stored
}

// DirExists reports whether DirectoryCreate has been called for path.
func (c *Channel) DirExists(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dirs[normalize(path)]
}

// normalize maps the two accepted separators onto one and drops trailing
// separators, so a prefix from a directory walk and the same path written
// by hand address the same entry.
func normalize(path string) string {
	path = strings.ReplaceAll(path, "/", `\`)
	if path != `\` {
		path = strings.TrimRight(path, `\`)
	}
	return path
}

var _ condor2nav.Channel = (*Channel)(nil)
