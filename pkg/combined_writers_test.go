package pkg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	err error
}

func (fw *failingWriter) Write(_ []byte) (int, error) {
	return 0, fw.err
}

func TestCombinedWriter(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	cw := NewCombinedWriter(&buf1, &buf2)

	n, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "hello", buf1.String())
	assert.Equal(t, "hello", buf2.String())
}

func TestCombinedWriter_OneWriterFails(t *testing.T) {
	var buf bytes.Buffer
	writeErr := errors.New("disk full")
	cw := NewCombinedWriter(&failingWriter{err: writeErr}, &buf)

	n, err := cw.Write([]byte("hello"))
	require.ErrorIs(t, err, writeErr)

	// the healthy writer still gets the bytes
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
}
