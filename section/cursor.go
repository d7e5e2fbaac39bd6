package section

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/resfile/unsmry/compress"
	"github.com/resfile/unsmry/endian"
	"github.com/resfile/unsmry/errs"
	"github.com/resfile/unsmry/format"
)

var (
	bigEndian    = endian.GetBigEndianEngine()
	littleEndian = endian.GetLittleEndianEngine()
)

// Cursor is an exclusively-owned, sequential, seekable view over one open
// summary file. It advances monotonically except for the relative seeks the
// sparse reader uses to step over undesired blocks.
//
// A Cursor is scoped to a single read pass and must be closed on every exit
// path. It is not safe for concurrent use; concurrent readers each open
// their own cursor.
type Cursor struct {
	r      io.ReadSeeker
	closer io.Closer
	buf    [format.NameLen]byte
}

// NewCursor creates a cursor over an in-memory or already-open seekable
// stream. The cursor does not take ownership; Close is a no-op.
func NewCursor(r io.ReadSeeker) *Cursor {
	return &Cursor{r: r}
}

// Open opens the summary file at path and returns a cursor over its
// contents. A recognized archive suffix (.zst, .s2, .lz4) selects the
// matching codec; the file is then inflated fully into memory and the cursor
// seeks over the inflated image, so framing and seek behavior are identical
// to the uncompressed case.
func Open(path string) (*Cursor, error) {
	_, compression := format.DetectCompression(path)
	if compression == format.CompressionNone {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		return &Cursor{r: f, closer: f}, nil
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("inflating %s: %w", path, err)
	}

	return &Cursor{r: bytes.NewReader(raw)}, nil
}

// Close releases the underlying file, if the cursor owns one.
func (c *Cursor) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer.Close()
}

// fill reads exactly n bytes into the cursor's scratch buffer.
//
// A clean end of stream (zero bytes read) surfaces as io.EOF so callers can
// distinguish it from mid-field truncation, which maps to ErrTruncatedInput.
func (c *Cursor) fill(n int) ([]byte, error) {
	b := c.buf[:n]
	if _, err := io.ReadFull(c.r, b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%w: need %d bytes", errs.ErrTruncatedInput, n)
	}

	return b, nil
}

// Skip advances the cursor by n bytes without reading them.
func (c *Cursor) Skip(n int64) error {
	if n == 0 {
		return nil
	}
	if _, err := c.r.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("%w: seeking %d bytes", errs.ErrTruncatedInput, n)
	}

	return nil
}

// ReadUint32 decodes one 4-byte big-endian unsigned integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.fill(4)
	if err != nil {
		return 0, err
	}

	return bigEndian.Uint32(b), nil
}

// ReadInt decodes one INTE element: a 4-byte big-endian integer read in its
// unsigned-range interpretation. The format carries no sign bit for these
// fields.
func (c *Cursor) ReadInt() (int, error) {
	v, err := c.ReadUint32()

	return int(v), err
}

// ReadReal decodes one REAL element: a 4-byte big-endian IEEE float.
func (c *Cursor) ReadReal() (float32, error) {
	b, err := c.fill(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bigEndian.Uint32(b)), nil
}

// ReadDouble decodes one DOUB element: an 8-byte little-endian IEEE float.
// DOUB is the one field type stored in the opposite byte order from every
// other numeric field in the format.
func (c *Cursor) ReadDouble() (float64, error) {
	b, err := c.fill(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(littleEndian.Uint64(b)), nil
}

// ReadBool decodes one LOGI element: a 4-byte big-endian integer, true iff
// strictly greater than zero.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint32()

	return v > 0, err
}

// ReadName decodes one CHAR element: 8 bytes of space-padded text with the
// padding stripped.
func (c *Cursor) ReadName() (string, error) {
	b, err := c.fill(format.NameLen)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// ReadTag decodes one 4-byte short text token. Unlike ReadName the result is
// not trimmed; type tags occupy their full width.
func (c *Cursor) ReadTag() (string, error) {
	b, err := c.fill(format.TagLen)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
