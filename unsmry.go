// Package unsmry decodes reservoir-simulation summary output: a .SMSPEC
// specification file declaring the measurement vectors of a run, paired with
// a .UNSMRY data file storing every vector's value at each report step.
//
// The decoder is read-only. Both files share one framing protocol: every
// field group is wrapped by matching 4-byte big-endian length markers, and a
// named section (8-character name, declared element count, 4-character type
// tag) is followed by framed payload blocks until the count is met. All
// numeric fields are big-endian except DOUB elements, which the format
// stores little-endian.
//
// # Basic Usage
//
// Open a dataset and pull vectors out of it:
//
//	import "github.com/resfile/unsmry"
//
//	ds, err := unsmry.Open("CASE")
//	if err != nil {
//	    return err
//	}
//	oilRate, err := ds.Vector("WOPR", "PROD1")
//
// Open resolves "CASE" to CASE.SMSPEC and CASE.UNSMRY (archived variants
// such as CASE.UNSMRY.zst are picked up transparently) and materializes the
// whole data file; each Vector call is then an in-memory column projection.
//
// When only a few vectors are wanted from a large run, OpenOnDemand avoids
// the table: every Vector call re-scans the data file, seeking past
// everything but the one requested column:
//
//	ds, err := unsmry.OpenOnDemand("CASE")
//
// Both modes return identical sequences for the same vector. A Dataset is
// safe for concurrent use in either mode.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the summary
// package. For the locator, frame and model details, use the summary and
// smspec packages directly; the section package exposes the framing layer
// for tools that inspect files of the same family.
package unsmry

import "github.com/resfile/unsmry/summary"

// Dataset is one opened summary dataset. See summary.Dataset.
type Dataset = summary.Dataset

// VectorRef names one vector for tabular extraction. See summary.VectorRef.
type VectorRef = summary.VectorRef

// Open opens a dataset eagerly: the whole data file is decoded into an
// immutable in-memory table at open time.
func Open(root string) (*Dataset, error) {
	return summary.Open(root, summary.Eager)
}

// OpenOnDemand opens a dataset lazily: nothing of the data file is read
// until a vector is requested, and each request extracts exactly one column.
func OpenOnDemand(root string) (*Dataset, error) {
	return summary.Open(root, summary.OnDemand)
}
