// Package summary is the consumer surface of the unsmry decoder: it opens a
// dataset root, builds the specification model, and serves per-vector time
// series from the companion data file.
//
// A dataset is opened in one of two modes, fixed for its lifetime. Eager
// mode materializes the whole data file into an in-memory table at open
// time; a vector request is then a pure column projection. On-demand mode
// defers all data-file reads: each vector request re-opens the file and
// seeks out exactly one column. The two modes return identical sequences;
// on-demand trades repeated scans for not holding the table, which pays off
// when only a few vectors out of many are wanted from a large file.
package summary

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/resfile/unsmry/format"
	"github.com/resfile/unsmry/smspec"
)

// Mode selects the data-file read strategy at open time.
type Mode uint8

const (
	// Eager materializes the whole data file at open time.
	Eager Mode = iota + 1
	// OnDemand scans the data file per vector request.
	OnDemand
)

func (m Mode) String() string {
	switch m {
	case Eager:
		return "eager"
	case OnDemand:
		return "on-demand"
	default:
		return "unknown"
	}
}

// Dataset is one opened summary dataset. All methods are safe for concurrent
// use: the specification model and the eager table are immutable after Open,
// and on-demand requests each own their file handle.
type Dataset struct {
	spec     *smspec.Model
	loc      *locator
	src      vectorSource
	mode     Mode
	dataPath string
}

// Open opens the dataset with the given root name in the given mode.
//
// The root may be a bare path or carry one of the .SMSPEC/.UNSMRY suffixes,
// with or without an archive suffix; it is normalized either way. For each
// half of the dataset the uncompressed file is preferred, then the archived
// variants in suffix order.
func Open(root string, mode Mode) (*Dataset, error) {
	if mode != Eager && mode != OnDemand {
		return nil, fmt.Errorf("invalid mode %d", mode)
	}
	base := rootName(root)

	specPath, err := findInput(base + format.SpecSuffix)
	if err != nil {
		return nil, err
	}
	dataPath, err := findInput(base + format.DataSuffix)
	if err != nil {
		return nil, err
	}

	model, err := smspec.Read(specPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", specPath, err)
	}

	d := &Dataset{
		spec:     model,
		loc:      newLocator(model),
		mode:     mode,
		dataPath: dataPath,
	}

	switch mode {
	case Eager:
		t, err := readTable(dataPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dataPath, err)
		}
		d.src = &tableSource{table: t}
	case OnDemand:
		d.src = &scanSource{path: dataPath}
	}

	return d, nil
}

// Vector returns the time series of one vector, in report-step order, with
// the resolved sign multiplier already applied to every value.
//
// The identifier's shape depends on the keyword category: a well, group,
// node or region name; "ix iy iz" grid coordinates for block vectors;
// "name number" for completion and segment vectors; "r1 r2" region pairs for
// inter-region flow; empty for field and scalar vectors.
func (d *Dataset) Vector(keyword, identifier string) ([]float64, error) {
	res, err := d.loc.resolve(keyword, identifier)
	if err != nil {
		return nil, err
	}

	values, err := d.src.column(res.Index)
	if err != nil {
		return nil, err
	}

	if res.Sign != 1 {
		for i := range values {
			values[i] *= res.Sign
		}
	}

	return values, nil
}

// Resolve maps a keyword/identifier pair to its column index and sign
// without reading any values.
func (d *Dataset) Resolve(keyword, identifier string) (Resolved, error) {
	return d.loc.resolve(keyword, identifier)
}

// Unit returns the unit label of the vector a keyword/identifier pair
// resolves to.
func (d *Dataset) Unit(keyword, identifier string) (string, error) {
	res, err := d.loc.resolve(keyword, identifier)
	if err != nil {
		return "", err
	}

	return d.spec.Unit(res.Index), nil
}

// Spec exposes the immutable specification model. Callers must not modify
// the returned model or its slices.
func (d *Dataset) Spec() *smspec.Model {
	return d.spec
}

// Mode reports the read strategy the dataset was opened with.
func (d *Dataset) Mode() Mode {
	return d.mode
}

// GridDims returns the grid extents (nx, ny, nz) in cells.
func (d *Dataset) GridDims() (int, int, int) {
	return d.spec.Nx, d.spec.Ny, d.spec.Nz
}

// StartDate returns the run start timestamp.
func (d *Dataset) StartDate() time.Time {
	return d.spec.StartDate
}

// WellNames returns the unique well names, in first-appearance order.
// Callers must not modify the returned slice.
func (d *Dataset) WellNames() []string {
	return d.spec.WellNames
}

// GroupNames returns the unique group names, in first-appearance order.
// Callers must not modify the returned slice.
func (d *Dataset) GroupNames() []string {
	return d.spec.GroupNames
}

// VectorNames returns the unique vector keywords, in first-appearance order.
// Callers must not modify the returned slice.
func (d *Dataset) VectorNames() []string {
	return d.spec.VectorNames
}

// Ministeps returns the report step numbers retained by an eager open, nil
// in on-demand mode.
func (d *Dataset) Ministeps() []int {
	if s, ok := d.src.(*tableSource); ok {
		return s.table.ministeps
	}

	return nil
}

// SeqHeaders returns the sequence header stamps retained by an eager open,
// nil in on-demand mode.
func (d *Dataset) SeqHeaders() []int {
	if s, ok := d.src.(*tableSource); ok {
		return s.table.seqHeaders
	}

	return nil
}

// Steps returns the number of report steps. In on-demand mode this costs one
// sparse scan of the data file.
func (d *Dataset) Steps() (int, error) {
	if s, ok := d.src.(*tableSource); ok {
		return len(s.table.rows), nil
	}

	// The first column exists in every well-formed PARAMS section.
	values, err := d.src.column(0)
	if err != nil {
		return 0, err
	}

	return len(values), nil
}

// rootName strips a recognized archive suffix and then either dataset-half
// suffix off the given path, yielding the dataset root.
func rootName(path string) string {
	p, _ := format.DetectCompression(path)
	p = strings.TrimSuffix(p, format.SpecSuffix)
	p = strings.TrimSuffix(p, format.DataSuffix)

	return p
}

// findInput locates one half of the dataset: the bare file first, then the
// archived variants.
func findInput(path string) (string, error) {
	candidates := []string{
		path,
		path + format.ArchiveSuffix(format.CompressionZstd),
		path + format.ArchiveSuffix(format.CompressionS2),
		path + format.ArchiveSuffix(format.CompressionLZ4),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s (also tried archive suffixes)", os.ErrNotExist, path)
}
