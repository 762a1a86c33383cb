package condor2nav

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotExist       = errors.New("file does not exist")
	ErrUnknownBackend = errors.New("no backend implements this operation for the path")
	ErrNoChannel      = errors.New("no device channel configured")
	ErrNotSupported   = errors.New("operation not supported")
)

// PathError records a failed local filesystem operation together with the
// operation name and the path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// ChannelError records a failed device-sync channel operation. The Err field
// carries the channel-reported reason.
type ChannelError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *ChannelError) Error() string {
	return fmt.Sprintf("device channel: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ChannelError) Unwrap() error {
	return e.Err
}

// DirCreateError records the specific segment of a directory walk that could
// not be created.
type DirCreateError struct {
	Segment string
	Err     error
}

// Error implements the error interface
func (e *DirCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Segment, e.Err)
}

// Unwrap returns the underlying error
func (e *DirCreateError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsUnknownBackend reports whether an error indicates that no backend
// implements the requested operation for the path
func IsUnknownBackend(err error) bool {
	return errors.Is(err, ErrUnknownBackend)
}
