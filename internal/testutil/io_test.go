package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailingReader(t *testing.T) {
	r := &FailingReader{Data: []byte("ab")}

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)

	buf := make([]byte, 4)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "b", string(buf[:n]))

	_, err = r.ReadByte()
	assert.ErrorIs(t, err, ErrDevice)
}

func TestFailingWriter(t *testing.T) {
	w := &FailingWriter{Limit: 3}

	n, err := w.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = w.Write([]byte("cd"))
	assert.ErrorIs(t, err, ErrDevice)
	assert.Equal(t, 1, n)

	_, err = w.Write([]byte("e"))
	assert.ErrorIs(t, err, ErrDevice)
}
