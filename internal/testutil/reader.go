package testutil

import "io"

// FailingReader yields Data and then fails with Err instead of io.EOF.
// A nil Err fails with ErrMockReadFailed.
type FailingReader struct {
	Data []byte
	Err  error

	off int
}

// NewFailingReader returns a reader that serves data and then fails.
func NewFailingReader(data []byte) *FailingReader {
	return &FailingReader{Data: data}
}

// Read implements io.Reader.
func (r *FailingReader) Read(p []byte) (int, error) {
	if r.off < len(r.Data) {
		n := copy(p, r.Data[r.off:])
		r.off += n
		return n, nil
	}
	if r.Err != nil {
		return 0, r.Err
	}
	return 0, ErrMockReadFailed
}

// ChunkReader serves Data at most Size bytes per Read call.
// It exercises callers that must not assume a single read returns everything.
type ChunkReader struct {
	Data []byte
	Size int

	off int
}

// Read implements io.Reader.
func (r *ChunkReader) Read(p []byte) (int, error) {
	if r.off >= len(r.Data) {
		return 0, io.EOF
	}
	size := r.Size
	if size <= 0 {
		size = 1
	}
	end := min(r.off+size, len(r.Data))
	n := copy(p, r.Data[r.off:end])
	r.off += n
	return n, nil
}
