package testutil

import (
	"errors"
	"io"
)

// ErrDevice is the error returned by the failing readers and writers.
var ErrDevice = errors.New("device error")

// FailingReader returns the bytes of Data and then ErrDevice instead of
// io.EOF.
type FailingReader struct {
	Data []byte
}

// ReadByte implements io.ByteReader.
func (r *FailingReader) ReadByte() (byte, error) {
	if len(r.Data) == 0 {
		return 0, ErrDevice
	}
	b := r.Data[0]
	r.Data = r.Data[1:]
	return b, nil
}

// Read implements io.Reader.
func (r *FailingReader) Read(p []byte) (int, error) {
	if len(r.Data) == 0 {
		return 0, ErrDevice
	}
	n := copy(p, r.Data)
	r.Data = r.Data[n:]
	return n, nil
}

// FailingWriter accepts Limit bytes and then fails every write with
// ErrDevice.
type FailingWriter struct {
	Limit   int
	written int
}

// Write implements io.Writer.
func (w *FailingWriter) Write(p []byte) (int, error) {
	room := w.Limit - w.written
	if room <= 0 {
		return 0, ErrDevice
	}
	if len(p) > room {
		w.written += room
		return room, ErrDevice
	}
	w.written += len(p)
	return len(p), nil
}

var (
	_ io.ByteReader = (*FailingReader)(nil)
	_ io.Reader     = (*FailingReader)(nil)
	_ io.Writer     = (*FailingWriter)(nil)
)
