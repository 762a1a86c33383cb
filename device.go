package condor2nav

import "context"

// deviceBackend adapts a device-sync Channel to the Backend interface.
// Paths are handed to the channel unsplit; the bridge resolves them itself.
type deviceBackend struct {
	ch Channel
}

// NewDeviceBackend wraps a device-sync channel in a Backend. All failures
// reported by the channel surface as *ChannelError.
func NewDeviceBackend(ch Channel) Backend {
	return &deviceBackend{ch: ch}
}

func (d *deviceBackend) Read(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := d.ch.Read(path)
	if err != nil {
		return nil, &ChannelError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func (d *deviceBackend) CreateDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := d.ch.DirectoryCreate(path); err != nil {
		return &ChannelError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

func (d *deviceBackend) FileExists(ctx context.Context, path string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	return d.ch.FileExists(path)
}

var _ Backend = (*deviceBackend)(nil)
