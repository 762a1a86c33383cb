package condor2nav

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	pathErr := &PathError{Op: "read", Path: `C:\f.txt`, Err: ErrNotExist}
	if !IsNotExist(pathErr) {
		t.Error("IsNotExist(PathError{ErrNotExist}) = false")
	}

	chErr := &ChannelError{Op: "read", Path: `\Dev\f`, Err: ErrNotExist}
	if !IsNotExist(chErr) {
		t.Error("IsNotExist(ChannelError{ErrNotExist}) = false")
	}

	dirErr := &DirCreateError{Segment: `C:\data\`, Err: pathErr}
	if !IsNotExist(dirErr) {
		t.Error("DirCreateError did not unwrap to its cause")
	}
	if !strings.Contains(dirErr.Error(), `C:\data\`) {
		t.Errorf("DirCreateError message %q does not name the segment", dirErr.Error())
	}

	wrapped := &PathError{Op: "read", Path: `\\s\sh\f`, Err: ErrUnknownBackend}
	if !IsUnknownBackend(wrapped) {
		t.Error("IsUnknownBackend = false for a wrapped ErrUnknownBackend")
	}

	var target *PathError
	if !errors.As(dirErr, &target) {
		t.Error("errors.As could not reach the PathError cause")
	}
}
