package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/resfile/unsmry/errs"
	"github.com/resfile/unsmry/format"
)

// Header is one decoded section header: the trimmed 8-character name, the
// declared element count, and the 4-character type tag.
type Header struct {
	Name  string
	Count int
	Type  format.RecordType
}

// ReadHeader reads the next section header: one framed 16-byte group holding
// the name, the declared element count and the type tag.
//
// End of stream is reported as io.EOF, raised either by a clean end of file
// before the leading length marker or by an all-blank section name. The
// blank-name path terminates immediately, before any trailing frame check.
// Any other failure inside the header group is fatal.
func (c *Cursor) ReadHeader() (Header, error) {
	lead, err := c.ReadUint32()
	if err != nil {
		// A clean EOF between sections is the normal end of the stream.
		return Header{}, err
	}

	name, err := c.ReadName()
	if err != nil {
		return Header{}, noEOF(err)
	}
	if name == "" {
		return Header{}, io.EOF
	}

	count, err := c.ReadInt()
	if err != nil {
		return Header{}, noEOF(err)
	}

	tag, err := c.ReadTag()
	if err != nil {
		return Header{}, noEOF(err)
	}

	if err := c.readTrailer(lead); err != nil {
		return Header{}, err
	}

	return Header{Name: name, Count: count, Type: format.RecordType(tag)}, nil
}

// ReadAll materializes a whole section: framed payload blocks are read and
// decoded according to the header's type tag until the declared element
// count is met. Element order is preserved across blocks.
//
// Returns:
//   - Values: All decoded elements, in file order
//   - error: UnknownRecordTypeError, FrameMismatchError or ErrTruncatedInput
func (c *Cursor) ReadAll(hdr Header) (Values, error) {
	vals := Values{Type: hdr.Type}
	if !hdr.Type.Valid() {
		return vals, &errs.UnknownRecordTypeError{Tag: string(hdr.Type)}
	}

	for vals.Len() < hdr.Count {
		_, payload, err := c.ReadBlock()
		if err != nil {
			return vals, err
		}
		if len(payload) < hdr.Type.Width() {
			return vals, fmt.Errorf("%w: %d-byte block holds no %s element",
				errs.ErrTruncatedInput, len(payload), hdr.Type)
		}
		if err := vals.appendPayload(payload); err != nil {
			return vals, err
		}
	}

	return vals, nil
}

// ReadAt extracts the element at the given zero-based index from a section,
// decoding nothing else. Blocks that cannot contain the target are stepped
// over with a relative seek; within the containing block the cursor seeks to
// the element, decodes it, and seeks to the block's trailing marker. The
// whole section is always consumed, so the cursor lands on the next section
// header either way.
//
// A target outside [0, Count) walks the section without decoding and returns
// ok=false; callers must treat that as a lookup failure, not a zero value.
// A negative target therefore skips the section wholesale.
func (c *Cursor) ReadAt(hdr Header, target int) (Value, bool, error) {
	val := Value{Type: hdr.Type}
	width := hdr.Type.Width()
	if width == 0 {
		return val, false, &errs.UnknownRecordTypeError{Tag: string(hdr.Type)}
	}

	// Logical element positions are 1-based in the scan below.
	want := target + 1
	found := false

	for i := 1; i <= hdr.Count; {
		lead, err := c.ReadUint32()
		if err != nil {
			return val, false, noEOF(err)
		}
		capacity := int(lead) / width
		if capacity == 0 {
			return val, false, fmt.Errorf("%w: %d-byte block holds no %s element",
				errs.ErrTruncatedInput, lead, hdr.Type)
		}

		if want < i || want >= i+capacity {
			if err := c.Skip(int64(lead)); err != nil {
				return val, false, err
			}
		} else {
			skip := (want - i) * width
			if err := c.Skip(int64(skip)); err != nil {
				return val, false, err
			}
			if err := c.readElement(&val); err != nil {
				return val, false, noEOF(err)
			}
			if err := c.Skip(int64(int(lead) - skip - width)); err != nil {
				return val, false, err
			}
			found = true
		}

		if err := c.readTrailer(lead); err != nil {
			return val, false, err
		}
		i += capacity
	}

	return val, found, nil
}

// SkipSection consumes a section without decoding any element, used to
// advance past the sections an on-demand request does not care about.
func (c *Cursor) SkipSection(hdr Header) error {
	_, _, err := c.ReadAt(hdr, -1)

	return err
}

// readElement decodes a single element of the value's type at the current
// cursor position.
func (c *Cursor) readElement(val *Value) error {
	var err error
	switch val.Type {
	case format.TypeInt:
		val.Int, err = c.ReadInt()
	case format.TypeReal:
		val.Real, err = c.ReadReal()
	case format.TypeDouble:
		val.Double, err = c.ReadDouble()
	case format.TypeChar:
		val.Str, err = c.ReadName()
	case format.TypeLogic:
		val.Bool, err = c.ReadBool()
	default:
		err = &errs.UnknownRecordTypeError{Tag: string(val.Type)}
	}

	return err
}

// Expect validates a section name against the closed set legal for the file
// kind being read. End-of-stream names never reach this check.
func Expect(kind format.FileKind, name string) error {
	for _, legal := range kind.SectionNames() {
		if name == legal {
			return nil
		}
	}

	return &errs.UnexpectedSectionError{Name: name}
}

// IsEndOfStream reports whether the error from ReadHeader marks the normal
// end of the section stream.
func IsEndOfStream(err error) bool {
	return errors.Is(err, io.EOF)
}
