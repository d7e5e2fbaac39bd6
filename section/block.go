package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/resfile/unsmry/errs"
)

// ReadBlock reads one length-delimited record: a 4-byte big-endian length,
// a payload of that many bytes, and the trailing repeat of the length.
//
// Returns:
//   - uint32: The payload length declared by the markers
//   - []byte: The payload, newly allocated and owned by the caller
//   - error: ErrTruncatedInput, or FrameMismatchError when the two length
//     markers disagree
func (c *Cursor) ReadBlock() (uint32, []byte, error) {
	lead, err := c.ReadUint32()
	if err != nil {
		return 0, nil, noEOF(err)
	}

	payload := make([]byte, lead)
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return 0, nil, fmt.Errorf("%w: block payload of %d bytes", errs.ErrTruncatedInput, lead)
	}

	if err := c.readTrailer(lead); err != nil {
		return 0, nil, err
	}

	return lead, payload, nil
}

// SkipBlock steps over one framed record without reading its payload,
// still validating the frame markers.
func (c *Cursor) SkipBlock() (uint32, error) {
	lead, err := c.ReadUint32()
	if err != nil {
		return 0, noEOF(err)
	}

	if err := c.Skip(int64(lead)); err != nil {
		return 0, err
	}

	return lead, c.readTrailer(lead)
}

// readTrailer consumes the trailing length marker and checks it against the
// leading one.
func (c *Cursor) readTrailer(lead uint32) error {
	trail, err := c.ReadUint32()
	if err != nil {
		return noEOF(err)
	}
	if trail != lead {
		return &errs.FrameMismatchError{Lead: lead, Trail: trail}
	}

	return nil
}

// noEOF converts a clean end-of-stream into a truncation error. Inside a
// frame there is no legitimate end of stream.
func noEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of stream inside frame", errs.ErrTruncatedInput)
	}

	return err
}
