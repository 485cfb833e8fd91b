package fmtbuf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Int(t *testing.T) {
	buf := make([]byte, 32)

	n, err := Format(buf, "%d", 42)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "42", string(buf[:n]))
}

func TestFormat_Overflow(t *testing.T) {
	buf := make([]byte, 1)

	_, err := Format(buf, "%d", 42)
	require.ErrorIs(t, err, ErrBufferFull)
}

func TestFormat_ExactFit(t *testing.T) {
	buf := make([]byte, 5)

	n, err := Format(buf, "%s", "hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))
}

func TestWriter_MultipleWrites(t *testing.T) {
	buf := make([]byte, 16)
	w := NewWriter(buf)

	_, err := fmt.Fprintf(w, "%s=", "answer")
	require.NoError(t, err)

	_, err = fmt.Fprintf(w, "%d", 42)
	require.NoError(t, err)

	assert.Equal(t, "answer=42", w.String())
	assert.Equal(t, 9, w.Len())
}

func TestWriter_Reset(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)

	_, err := w.Write([]byte("abcd"))
	require.NoError(t, err)

	_, err = w.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrBufferFull)

	w.Reset()

	n, err := w.Write([]byte("xy"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("xy"), w.Bytes())
}

func TestWriter_EmptyWrite(t *testing.T) {
	w := NewWriter(nil)

	n, err := w.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
