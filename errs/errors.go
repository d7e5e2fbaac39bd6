// Package errs defines the error taxonomy of the unsmry decoder.
//
// Fatal decode errors (truncation, frame corruption, unexpected or unknown
// sections) abort the in-progress read of a file; lookup errors (unsupported
// keyword, vector not found) are reported to the caller per request. None of
// them are retried internally.
//
// Each condition has a sentinel value usable with errors.Is. Conditions that
// carry offending values (mismatched frame lengths, attempted combined codes)
// are raised as typed structs whose Is method matches the sentinel, so both
// errors.Is checks and errors.As extraction work.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput indicates fewer bytes remained than a field required.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrFrameMismatch indicates a record's leading and trailing length
	// markers disagree, which signals file corruption.
	ErrFrameMismatch = errors.New("frame length mismatch")

	// ErrUnexpectedSection indicates a section name outside the closed set
	// expected for the file being read.
	ErrUnexpectedSection = errors.New("unexpected section")

	// ErrUnknownRecordType indicates a type tag outside the closed set
	// {INTE, REAL, DOUB, CHAR, LOGI}.
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrUnsupportedKeyword indicates a vector keyword category the locator
	// does not implement, such as the local-grid prefixes.
	ErrUnsupportedKeyword = errors.New("unsupported keyword")

	// ErrVectorNotFound indicates no vector matches the keyword/identifier
	// combination in the specification metadata.
	ErrVectorNotFound = errors.New("vector not found")

	// ErrBadIdentifier indicates an identifier string that does not parse
	// into the shape the keyword category requires.
	ErrBadIdentifier = errors.New("malformed identifier")
)

// FrameMismatchError carries the two disagreeing length markers of a framed
// record. It matches ErrFrameMismatch.
type FrameMismatchError struct {
	Lead  uint32
	Trail uint32
}

func (e *FrameMismatchError) Error() string {
	return fmt.Sprintf("frame length mismatch: start marker %d, end marker %d", e.Lead, e.Trail)
}

func (e *FrameMismatchError) Is(target error) bool {
	return target == ErrFrameMismatch
}

// UnexpectedSectionError carries the offending section name. It matches
// ErrUnexpectedSection.
type UnexpectedSectionError struct {
	Name string
}

func (e *UnexpectedSectionError) Error() string {
	return fmt.Sprintf("unexpected section %q", e.Name)
}

func (e *UnexpectedSectionError) Is(target error) bool {
	return target == ErrUnexpectedSection
}

// UnknownRecordTypeError carries the offending type tag. It matches
// ErrUnknownRecordType.
type UnknownRecordTypeError struct {
	Tag string
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("unknown record type %q", e.Tag)
}

func (e *UnknownRecordTypeError) Is(target error) bool {
	return target == ErrUnknownRecordType
}

// UnsupportedKeywordError carries the keyword whose category the locator does
// not implement. It matches ErrUnsupportedKeyword.
type UnsupportedKeywordError struct {
	Keyword string
}

func (e *UnsupportedKeywordError) Error() string {
	return fmt.Sprintf("unsupported keyword %q", e.Keyword)
}

func (e *UnsupportedKeywordError) Is(target error) bool {
	return target == ErrUnsupportedKeyword
}

// VectorNotFoundError carries the keyword and identifier that failed to
// resolve. For region-to-region flow keywords both attempted combined codes
// are preserved, since either packing order could have been the one the
// caller intended. It matches ErrVectorNotFound.
type VectorNotFoundError struct {
	Keyword    string
	Identifier string
	Codes      []int
}

func (e *VectorNotFoundError) Error() string {
	if len(e.Codes) > 0 {
		return fmt.Sprintf("vector not found: keyword %q, identifier %q (tried combined codes %v)",
			e.Keyword, e.Identifier, e.Codes)
	}

	return fmt.Sprintf("vector not found: keyword %q, identifier %q", e.Keyword, e.Identifier)
}

func (e *VectorNotFoundError) Is(target error) bool {
	return target == ErrVectorNotFound
}
