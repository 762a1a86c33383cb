package condor2nav

import "context"

// Channel is the narrow contract of the device-sync bridge to a paired
// navigation device. The bridge resolves device paths itself; the core never
// splits a path before handing it to the channel, except during directory
// walks.
//
// The channel is a shared, connection-oriented resource. Implementations are
// not required to be safe for concurrent use; callers serialize access.
// DirectoryCreate must treat an already existing directory as success.
type Channel interface {
	// Read returns the full byte contents of the file at path.
	Read(path string) ([]byte, error)

	// DirectoryCreate creates a single directory level on the device.
	DirectoryCreate(path string) error

	// FileExists reports whether a file exists at path. It never fails;
	// any inability to check reports false.
	FileExists(path string) bool
}

// Backend is one storage backend behind the path router. There is one
// implementation per Classification kind: the local filesystem adapter in
// driver/local, and the device backend wrapping a Channel.
type Backend interface {
	// Read returns the full byte contents of the file at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// CreateDir creates a single directory level. Creating a directory
	// that already exists is not an error.
	CreateDir(ctx context.Context, path string) error

	// FileExists reports whether a file exists at path, treating any
	// inability to check as false.
	FileExists(ctx context.Context, path string) bool
}

// CanWatch indicates a backend can report changes to files matching a
// filter. Use a type assertion to check for support:
//
//	if w, ok := backend.(condor2nav.CanWatch); ok {
//	    token, err := w.Watch(ctx, "*.fpl")
//	}
type CanWatch interface {
	Watch(ctx context.Context, filter string) (ChangeToken, error)
}
