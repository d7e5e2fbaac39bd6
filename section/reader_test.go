package section

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resfile/unsmry/errs"
	"github.com/resfile/unsmry/format"
)

// frame wraps a payload with matching length markers.
func frame(payload []byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(payload)))
	out = append(out, payload...)

	return binary.BigEndian.AppendUint32(out, uint32(len(payload)))
}

// header builds the framed 16-byte section header group.
func header(name string, count int, tag string) []byte {
	payload := []byte(fmt.Sprintf("%-8s", name))
	payload = binary.BigEndian.AppendUint32(payload, uint32(count))
	payload = append(payload, tag...)

	return frame(payload)
}

func intePayload(vals ...int) []byte {
	var out []byte
	for _, v := range vals {
		out = binary.BigEndian.AppendUint32(out, uint32(v))
	}

	return out
}

func realPayload(vals ...float32) []byte {
	var out []byte
	for _, v := range vals {
		out = binary.BigEndian.AppendUint32(out, math.Float32bits(v))
	}

	return out
}

func doubPayload(vals ...float64) []byte {
	var out []byte
	for _, v := range vals {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
	}

	return out
}

func charPayload(vals ...string) []byte {
	var out []byte
	for _, v := range vals {
		out = append(out, fmt.Sprintf("%-8s", v)...)
	}

	return out
}

func TestReadHeader(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		c := newTestCursor(header("KEYWORDS", 42, "CHAR"))

		hdr, err := c.ReadHeader()
		require.NoError(t, err)
		require.Equal(t, "KEYWORDS", hdr.Name)
		require.Equal(t, 42, hdr.Count)
		require.Equal(t, format.TypeChar, hdr.Type)
	})

	t.Run("Clean EOF ends the stream", func(t *testing.T) {
		c := newTestCursor(nil)

		_, err := c.ReadHeader()
		require.True(t, IsEndOfStream(err))
	})

	t.Run("Blank name ends the stream before the trailing check", func(t *testing.T) {
		// Trailing marker deliberately disagrees; a blank name must win.
		payload := []byte(fmt.Sprintf("%-8s", ""))
		payload = binary.BigEndian.AppendUint32(payload, 0)
		payload = append(payload, "INTE"...)
		data := binary.BigEndian.AppendUint32(nil, 16)
		data = append(data, payload...)
		data = binary.BigEndian.AppendUint32(data, 999)

		c := newTestCursor(data)

		_, err := c.ReadHeader()
		require.True(t, IsEndOfStream(err))
	})

	t.Run("Frame mismatch carries both lengths", func(t *testing.T) {
		payload := []byte(fmt.Sprintf("%-8s", "DIMENS"))
		payload = binary.BigEndian.AppendUint32(payload, 6)
		payload = append(payload, "INTE"...)
		data := binary.BigEndian.AppendUint32(nil, 16)
		data = append(data, payload...)
		data = binary.BigEndian.AppendUint32(data, 20)

		c := newTestCursor(data)

		_, err := c.ReadHeader()
		require.ErrorIs(t, err, errs.ErrFrameMismatch)

		var mismatch *errs.FrameMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, uint32(16), mismatch.Lead)
		require.Equal(t, uint32(20), mismatch.Trail)
	})

	t.Run("Truncated header", func(t *testing.T) {
		data := header("DIMENS", 6, "INTE")

		c := newTestCursor(data[:9])

		_, err := c.ReadHeader()
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})
}

func TestReadBlock(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		payload := intePayload(1, 2, 3)
		c := newTestCursor(frame(payload))

		length, got, err := c.ReadBlock()
		require.NoError(t, err)
		require.Equal(t, uint32(len(payload)), length)
		require.Equal(t, payload, got)
	})

	t.Run("Mismatched trailer", func(t *testing.T) {
		data := frame(intePayload(1, 2, 3))
		data[len(data)-1]++

		c := newTestCursor(data)

		_, _, err := c.ReadBlock()
		require.ErrorIs(t, err, errs.ErrFrameMismatch)
	})

	t.Run("Truncated payload", func(t *testing.T) {
		data := frame(intePayload(1, 2, 3))

		c := newTestCursor(data[:8])

		_, _, err := c.ReadBlock()
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})
}

func TestReadAll(t *testing.T) {
	t.Run("Integers across multiple blocks keep order", func(t *testing.T) {
		var data []byte
		data = append(data, frame(intePayload(1, 2, 3))...)
		data = append(data, frame(intePayload(4, 5))...)

		c := newTestCursor(data)

		vals, err := c.ReadAll(Header{Name: "NUMS", Count: 5, Type: format.TypeInt})
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3, 4, 5}, vals.Ints)
	})

	t.Run("Reals", func(t *testing.T) {
		c := newTestCursor(frame(realPayload(1.5, -2.25)))

		vals, err := c.ReadAll(Header{Name: "PARAMS", Count: 2, Type: format.TypeReal})
		require.NoError(t, err)
		require.Equal(t, []float32{1.5, -2.25}, vals.Reals)
	})

	t.Run("Doubles decode little-endian", func(t *testing.T) {
		c := newTestCursor(frame(doubPayload(3.625, -10.5)))

		vals, err := c.ReadAll(Header{Name: "RUNTIMED", Count: 2, Type: format.TypeDouble})
		require.NoError(t, err)
		require.Equal(t, []float64{3.625, -10.5}, vals.Doubles)
	})

	t.Run("Strings trimmed", func(t *testing.T) {
		c := newTestCursor(frame(charPayload("WOPR", "FOPT")))

		vals, err := c.ReadAll(Header{Name: "KEYWORDS", Count: 2, Type: format.TypeChar})
		require.NoError(t, err)
		require.Equal(t, []string{"WOPR", "FOPT"}, vals.Strings)
	})

	t.Run("Booleans", func(t *testing.T) {
		c := newTestCursor(frame(intePayload(0, 1, 2)))

		vals, err := c.ReadAll(Header{Name: "LOGIHEAD", Count: 3, Type: format.TypeLogic})
		require.NoError(t, err)
		require.Equal(t, []bool{false, true, true}, vals.Bools)
	})

	t.Run("Unknown type tag", func(t *testing.T) {
		c := newTestCursor(frame(intePayload(1)))

		_, err := c.ReadAll(Header{Name: "NUMS", Count: 1, Type: "XXXX"})
		require.ErrorIs(t, err, errs.ErrUnknownRecordType)

		var unknown *errs.UnknownRecordTypeError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, "XXXX", unknown.Tag)
	})

	t.Run("Inner frame mismatch", func(t *testing.T) {
		data := frame(intePayload(1, 2))
		data[len(data)-1]++

		c := newTestCursor(data)

		_, err := c.ReadAll(Header{Name: "NUMS", Count: 2, Type: format.TypeInt})
		require.ErrorIs(t, err, errs.ErrFrameMismatch)
	})

	t.Run("Zero count reads nothing", func(t *testing.T) {
		c := newTestCursor(nil)

		vals, err := c.ReadAll(Header{Name: "RESTART", Count: 0, Type: format.TypeChar})
		require.NoError(t, err)
		require.Equal(t, 0, vals.Len())
	})
}

// TestCodecRoundTrip re-encodes decoded payloads and compares bytes: the
// codec must be bijective on valid input for every record type.
func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		tag     format.RecordType
		payload []byte
		encode  func(vals Values) []byte
	}{
		{
			name:    "INTE",
			tag:     format.TypeInt,
			payload: intePayload(0, 7, 557059, int(uint32(0xFFFFFFFF))),
			encode:  func(vals Values) []byte { return intePayload(vals.Ints...) },
		},
		{
			name:    "REAL",
			tag:     format.TypeReal,
			payload: realPayload(0, 1.5, -3.25, float32(math.Inf(1))),
			encode:  func(vals Values) []byte { return realPayload(vals.Reals...) },
		},
		{
			name:    "DOUB",
			tag:     format.TypeDouble,
			payload: doubPayload(0, 2.5, -1e300),
			encode:  func(vals Values) []byte { return doubPayload(vals.Doubles...) },
		},
		{
			name:    "CHAR",
			tag:     format.TypeChar,
			payload: charPayload("WOPR", "P1", ""),
			encode:  func(vals Values) []byte { return charPayload(vals.Strings...) },
		},
		{
			name:    "LOGI",
			tag:     format.TypeLogic,
			payload: intePayload(0, 1, 0),
			encode: func(vals Values) []byte {
				out := make([]int, len(vals.Bools))
				for i, b := range vals.Bools {
					if b {
						out[i] = 1
					}
				}
				return intePayload(out...)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width := tt.tag.Width()
			count := len(tt.payload) / width

			c := newTestCursor(frame(tt.payload))
			vals, err := c.ReadAll(Header{Name: "X", Count: count, Type: tt.tag})
			require.NoError(t, err)
			require.Equal(t, count, vals.Len())

			require.Equal(t, tt.payload, tt.encode(vals))
		})
	}
}

func TestReadAt(t *testing.T) {
	// Three blocks of capacities 3, 3, 2: logical elements 1-8.
	build := func() *Cursor {
		var data []byte
		data = append(data, frame(realPayload(10, 11, 12))...)
		data = append(data, frame(realPayload(13, 14, 15))...)
		data = append(data, frame(realPayload(16, 17))...)

		return newTestCursor(data)
	}
	hdr := Header{Name: "PARAMS", Count: 8, Type: format.TypeReal}

	t.Run("Each position extracts the right element", func(t *testing.T) {
		for target := 0; target < 8; target++ {
			c := build()

			val, ok, err := c.ReadAt(hdr, target)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, float32(10+target), val.Real)

			// The cursor must land exactly past the section.
			_, err = c.ReadUint32()
			require.True(t, IsEndOfStream(err))
		}
	})

	t.Run("Out-of-range target walks the section and reports a miss", func(t *testing.T) {
		c := build()

		_, ok, err := c.ReadAt(hdr, 8)
		require.NoError(t, err)
		require.False(t, ok)

		_, err = c.ReadUint32()
		require.True(t, IsEndOfStream(err))
	})

	t.Run("Negative target skips the section", func(t *testing.T) {
		c := build()

		require.NoError(t, c.SkipSection(hdr))

		_, err := c.ReadUint32()
		require.True(t, IsEndOfStream(err))
	})

	t.Run("Sparse double extraction", func(t *testing.T) {
		c := newTestCursor(frame(doubPayload(1.5, 2.5, 3.5)))

		val, ok, err := c.ReadAt(Header{Name: "RUNTIMED", Count: 3, Type: format.TypeDouble}, 1)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2.5, val.Double)
	})

	t.Run("Frame mismatch in a skipped block", func(t *testing.T) {
		data := frame(realPayload(10, 11, 12))
		data[len(data)-1]++

		c := newTestCursor(data)

		_, _, err := c.ReadAt(Header{Name: "PARAMS", Count: 3, Type: format.TypeReal}, -1)
		require.ErrorIs(t, err, errs.ErrFrameMismatch)
	})

	t.Run("Unknown type tag", func(t *testing.T) {
		c := newTestCursor(frame(intePayload(1)))

		_, _, err := c.ReadAt(Header{Name: "PARAMS", Count: 1, Type: "ZZZZ"}, 0)
		require.ErrorIs(t, err, errs.ErrUnknownRecordType)
	})
}

func TestExpect(t *testing.T) {
	require.NoError(t, Expect(format.KindSpec, "KEYWORDS"))
	require.NoError(t, Expect(format.KindData, "PARAMS"))

	err := Expect(format.KindData, "KEYWORDS")
	require.ErrorIs(t, err, errs.ErrUnexpectedSection)

	var unexpected *errs.UnexpectedSectionError
	require.ErrorAs(t, err, &unexpected)
	require.Equal(t, "KEYWORDS", unexpected.Name)
}
