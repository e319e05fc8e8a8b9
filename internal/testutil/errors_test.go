package testutil

import (
	"errors"
	"io"
	"testing"
)

// errMockWrapped is a static error for testing that non-wrapped errors don't match sentinels.
var errMockWrapped = errors.New("wrapped: read failed")

func TestMockErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrMockFileNotFound", ErrMockFileNotFound, "file not found"},
		{"ErrMockReadFailed", ErrMockReadFailed, "read failed"},
		{"ErrMockRandomExhausted", ErrMockRandomExhausted, "random source exhausted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestMockErrorsAreSentinelErrors(t *testing.T) {
	if !errors.Is(ErrMockReadFailed, ErrMockReadFailed) {
		t.Error("ErrMockReadFailed should be equal to itself")
	}

	// Non-wrapped errors should not match (standard Go error behavior)
	if errors.Is(errMockWrapped, ErrMockReadFailed) {
		t.Error("non-wrapped error should not match sentinel")
	}
}

func TestFailingReader(t *testing.T) {
	r := NewFailingReader([]byte("abc"))

	got, err := io.ReadAll(r)
	if !errors.Is(err, ErrMockReadFailed) {
		t.Fatalf("ReadAll error = %v, want %v", err, ErrMockReadFailed)
	}
	if string(got) != "abc" {
		t.Errorf("ReadAll data = %q, want %q", got, "abc")
	}
}

func TestFailingReader_CustomError(t *testing.T) {
	r := &FailingReader{Err: ErrMockFileNotFound}

	_, err := io.ReadAll(r)
	if !errors.Is(err, ErrMockFileNotFound) {
		t.Fatalf("ReadAll error = %v, want %v", err, ErrMockFileNotFound)
	}
}

func TestChunkReader(t *testing.T) {
	r := &ChunkReader{Data: []byte("hello world"), Size: 3}

	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if err != nil || n != 3 {
		t.Fatalf("first Read = (%d, %v), want (3, nil)", n, err)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error = %v", err)
	}
	if string(rest) != "lo world" {
		t.Errorf("remaining data = %q, want %q", rest, "lo world")
	}
}
