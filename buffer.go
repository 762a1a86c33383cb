package condor2nav

import (
	"bytes"
	"io"

	"github.com/cespare/xxhash/v2"
)

// StreamBuffer holds the full contents of one file, produced once by a read
// operation. The contents exactly equal the backend's file contents at read
// time; no transformation or line-ending translation is applied. The buffer
// is owned by the caller and must not be modified after creation.
type StreamBuffer struct {
	path string
	data []byte
}

// NewStreamBuffer wraps data read from path in a StreamBuffer. The buffer
// takes ownership of data.
func NewStreamBuffer(path string, data []byte) *StreamBuffer {
	return &StreamBuffer{path: path, data: data}
}

// Path returns the path the buffer was read from.
func (b *StreamBuffer) Path() string {
	return b.path
}

// Bytes returns the file contents.
func (b *StreamBuffer) Bytes() []byte {
	return b.data
}

// Len returns the content length in bytes.
func (b *StreamBuffer) Len() int {
	return len(b.data)
}

// Reader returns a new reader over the contents. Each call returns an
// independent reader positioned at the start.
func (b *StreamBuffer) Reader() io.Reader {
	return bytes.NewReader(b.data)
}

// Sum64 returns the xxHash64 digest of the contents.
func (b *StreamBuffer) Sum64() uint64 {
	return xxhash.Sum64(b.data)
}

// Checksum returns the hex-encoded digest of the contents using the given
// algorithm.
func (b *StreamBuffer) Checksum(algorithm ChecksumAlgorithm) (string, error) {
	return CalculateChecksum(b.Reader(), algorithm)
}
