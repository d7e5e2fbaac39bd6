package section

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resfile/unsmry/errs"
)

func newTestCursor(data []byte) *Cursor {
	return NewCursor(bytes.NewReader(data))
}

func TestCursor_ReadInt(t *testing.T) {
	t.Run("Unsigned range", func(t *testing.T) {
		// 3 + 32768*17 = 557059, a typical combined region code.
		data := binary.BigEndian.AppendUint32(nil, 557059)
		c := newTestCursor(data)

		v, err := c.ReadInt()
		require.NoError(t, err)
		require.Equal(t, 557059, v)
	})

	t.Run("High bit is magnitude, not sign", func(t *testing.T) {
		data := binary.BigEndian.AppendUint32(nil, 0x80000001)
		c := newTestCursor(data)

		v, err := c.ReadInt()
		require.NoError(t, err)
		require.Equal(t, int(uint32(0x80000001)), v)
	})
}

func TestCursor_ReadReal(t *testing.T) {
	data := binary.BigEndian.AppendUint32(nil, math.Float32bits(123.5))
	c := newTestCursor(data)

	v, err := c.ReadReal()
	require.NoError(t, err)
	require.Equal(t, float32(123.5), v)
}

func TestCursor_ReadDouble(t *testing.T) {
	// DOUB is the one little-endian field type in the format.
	data := binary.LittleEndian.AppendUint64(nil, math.Float64bits(-0.25))
	c := newTestCursor(data)

	v, err := c.ReadDouble()
	require.NoError(t, err)
	require.Equal(t, -0.25, v)
}

func TestCursor_ReadBool(t *testing.T) {
	var data []byte
	data = binary.BigEndian.AppendUint32(data, 0)
	data = binary.BigEndian.AppendUint32(data, 1)
	data = binary.BigEndian.AppendUint32(data, 7)
	c := newTestCursor(data)

	for _, want := range []bool{false, true, true} {
		v, err := c.ReadBool()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestCursor_ReadName(t *testing.T) {
	t.Run("Trailing padding stripped", func(t *testing.T) {
		c := newTestCursor([]byte("WOPR    "))

		v, err := c.ReadName()
		require.NoError(t, err)
		require.Equal(t, "WOPR", v)
	})

	t.Run("Full width name", func(t *testing.T) {
		c := newTestCursor([]byte("MSUMNEWT"))

		v, err := c.ReadName()
		require.NoError(t, err)
		require.Equal(t, "MSUMNEWT", v)
	})
}

func TestCursor_ReadTag(t *testing.T) {
	// The 4-byte tag variant is not trimmed.
	c := newTestCursor([]byte("INTE"))

	v, err := c.ReadTag()
	require.NoError(t, err)
	require.Equal(t, "INTE", v)
}

func TestCursor_Truncation(t *testing.T) {
	t.Run("Mid-field", func(t *testing.T) {
		c := newTestCursor([]byte{0x01, 0x02})

		_, err := c.ReadUint32()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("Clean EOF surfaces as io.EOF", func(t *testing.T) {
		c := newTestCursor(nil)

		_, err := c.ReadUint32()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Double needs eight bytes", func(t *testing.T) {
		c := newTestCursor([]byte{1, 2, 3, 4, 5, 6, 7})

		_, err := c.ReadDouble()
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})
}
