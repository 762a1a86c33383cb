package condor2nav

import "context"

// ShareReadPolicy controls how read and existence operations treat
// NetworkShare paths. No source of the translator reads from a network
// share, so the behavior is a policy choice rather than a contract.
type ShareReadPolicy int

const (
	// ShareReadLocal serves UNC paths through the local backend; the host
	// filesystem resolves network shares itself. This is the default.
	ShareReadLocal ShareReadPolicy = iota
	// ShareReadReject surfaces ErrUnknownBackend for UNC reads.
	ShareReadReject
)

// Router routes every file operation to the backend that owns the path.
// Each public operation classifies the path first, then dispatches to the
// local filesystem backend or to the device backend.
//
// A Router is not safe for concurrent use: the device channel behind the
// device backend is a shared connection, and local reads temporarily change
// the process working directory.
type Router struct {
	local      Backend
	device     Backend
	shareReads ShareReadPolicy
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithShareReadPolicy sets the NetworkShare read policy.
func WithShareReadPolicy(p ShareReadPolicy) RouterOption {
	return func(r *Router) {
		r.shareReads = p
	}
}

// NewRouter creates a Router over the given backends. The device backend
// may be nil when no device is paired; device paths then fail with
// ErrNoChannel (reads, directory creation) or report false (existence).
func NewRouter(local, device Backend, opts ...RouterOption) *Router {
	r := &Router{
		local:  local,
		device: device,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OpenForRead reads the full contents of the file at path from whichever
// backend owns it. Local reads resolve relative lookups from the file's
// containing directory; the previous working directory is restored on every
// exit path.
func (r *Router) OpenForRead(ctx context.Context, path string) (*StreamBuffer, error) {
	be, err := r.readBackend("read", path)
	if err != nil {
		return nil, err
	}

	data, err := be.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewStreamBuffer(path, data), nil
}

// ReadAll reads the full contents of the file at path.
func (r *Router) ReadAll(ctx context.Context, path string) ([]byte, error) {
	buf, err := r.OpenForRead(ctx, path)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Exists reports whether a file exists at path. It never fails: any
// inability to check reports false. Device paths ask the channel; every
// other classification checks local existence.
func (r *Router) Exists(ctx context.Context, path string) bool {
	if Classify(path).Backend == RemoteDevice {
		if r.device == nil {
			return false
		}
		return r.device.FileExists(ctx, path)
	}
	if r.local == nil {
		return false
	}
	return r.local.FileExists(ctx, path)
}

// EnsureDirectory creates every directory level of path on the backend that
// owns it, walking the path left to right. Creating a level that already
// exists is not an error, so the call is idempotent. The machine and share
// segments of a network share path are never created on their own; they are
// merged into the first creatable prefix. An empty path is a no-op success.
func (r *Router) EnsureDirectory(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	c := Classify(path)

	var be Backend
	if c.Backend == RemoteDevice {
		be = r.device
		if be == nil {
			return &DirCreateError{Segment: path, Err: ErrNoChannel}
		}
	} else {
		be = r.local
		if be == nil {
			return &DirCreateError{Segment: path, Err: ErrUnknownBackend}
		}
	}

	start, ok := creationStart(path, c)
	if !ok {
		// The whole path lies inside the non-creatable root region.
		return nil
	}

	for i := start; i < len(path); i++ {
		if !isSeparator(path[i]) {
			continue
		}
		prefix := path[:i+1]
		if err := be.CreateDir(ctx, prefix); err != nil {
			return &DirCreateError{Segment: prefix, Err: err}
		}
	}

	// A trailing segment with no further separator is still created.
	if !isSeparator(path[len(path)-1]) {
		if err := be.CreateDir(ctx, path); err != nil {
			return &DirCreateError{Segment: path, Err: err}
		}
	}
	return nil
}

// Watch reports changes to local files matching filter, when the local
// backend supports watching. Device paths have no change notification; a
// CancelledChangeToken is returned when watching is unavailable.
func (r *Router) Watch(ctx context.Context, filter string) (ChangeToken, error) {
	if w, ok := r.local.(CanWatch); ok {
		return w.Watch(ctx, filter)
	}
	return CancelledChangeToken{}, nil
}

// readBackend picks the backend for a read-type operation, applying the
// NetworkShare policy.
func (r *Router) readBackend(op, path string) (Backend, error) {
	c := Classify(path)
	switch c.Backend {
	case RemoteDevice:
		if r.device == nil {
			return nil, &ChannelError{Op: op, Path: path, Err: ErrNoChannel}
		}
		return r.device, nil
	case NetworkShare:
		if r.shareReads == ShareReadReject {
			return nil, &PathError{Op: op, Path: path, Err: ErrUnknownBackend}
		}
	}
	if r.local == nil {
		return nil, &PathError{Op: op, Path: path, Err: ErrUnknownBackend}
	}
	return r.local, nil
}

// creationStart returns the index from which separators mark creatable
// prefixes. It reports false when the whole path lies inside the root-skip
// region (for example a bare `\\server\share`).
func creationStart(path string, c Classification) (int, bool) {
	if c.Backend == NetworkShare {
		// Merge the leading separators and the skip segments into one
		// unsplittable prefix.
		i := 2
		for n := 0; n < c.RootSkipSegments; n++ {
			j := indexSeparator(path, i)
			if j < 0 {
				return 0, false
			}
			i = j + 1
		}
		return i, true
	}
	// A leading separator never marks a creatable prefix: the first
	// segment of a device-rooted path includes its root separator.
	if isSeparator(path[0]) {
		return 1, true
	}
	return 0, true
}
