// Package smspec decodes the specification half of a summary dataset.
//
// The .SMSPEC file declares, for every vector stored at each report step of
// the companion .UNSMRY file, a keyword, an associated well/group/node name
// and an integer region number. Index i into those three parallel sequences
// is the canonical column index of vector i in every data-file row; the
// whole lookup machinery in the summary package rests on that alignment.
package smspec

import (
	"strings"
	"time"

	"github.com/resfile/unsmry/format"
	"github.com/resfile/unsmry/section"
)

// Model is the static metadata decoded from a .SMSPEC file. It is built once
// per opened dataset, immutable thereafter, and safe to share across
// goroutines.
type Model struct {
	// Grid extents in cells.
	Nx, Ny, Nz int

	// NList is the number of vector parameters stored at each report step,
	// and the length of the three parallel sequences below.
	NList int

	// StartDate is the run start timestamp.
	StartDate time.Time

	// RestartStep is the report step of the restart file this run originated
	// from, zero when the run started from scratch.
	RestartStep int

	// RestartOrigin is the root name of the originating restart run, empty
	// when none.
	RestartOrigin string

	// Keywords, EntityNames and RegionNumbers are the parallel per-vector
	// sequences. EntityNames has padding sentinels already cleared to the
	// empty string.
	Keywords      []string
	EntityNames   []string
	RegionNumbers []int

	// Units and Measurements label each vector for presentation.
	Units        []string
	Measurements []string

	// WellNames, GroupNames and VectorNames are the derived unique name
	// lists, in order of first appearance, with empty entries discarded.
	WellNames   []string
	GroupNames  []string
	VectorNames []string

	// HeaderInfo and the runtime sections are retained as decoded for
	// diagnostic consumers.
	HeaderInfo     []int
	RuntimeInts    []int
	RuntimeDoubles []float64
}

// Read decodes the .SMSPEC file at path and builds the model.
//
// The section stream is consumed to its end; names outside the closed
// specification set are fatal. The file handle is closed on every exit path.
func Read(path string) (*Model, error) {
	cur, err := section.Open(path)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	m := &Model{}
	if err := m.readSections(cur); err != nil {
		return nil, err
	}
	m.derive()

	return m, nil
}

func (m *Model) readSections(cur *section.Cursor) error {
	for {
		hdr, err := cur.ReadHeader()
		if err != nil {
			if section.IsEndOfStream(err) {
				return nil
			}

			return err
		}
		if err := section.Expect(format.KindSpec, hdr.Name); err != nil {
			return err
		}

		vals, err := cur.ReadAll(hdr)
		if err != nil {
			return err
		}

		switch hdr.Name {
		case "INTEHEAD":
			m.HeaderInfo = vals.Ints
		case "RESTART":
			// Up to 72 characters of originating root name, split into
			// 8-character words on the wire.
			m.RestartOrigin = strings.TrimSpace(strings.Join(vals.Strings, ""))
		case "DIMENS":
			m.applyDimens(vals.Ints)
		case "STARTDAT":
			m.applyStartDate(vals.Ints)
		case "RUNTIMEI":
			m.RuntimeInts = vals.Ints
		case "RUNTIMED":
			m.RuntimeDoubles = vals.Doubles
		case "KEYWORDS":
			m.Keywords = vals.Strings
		case "WGNAMES":
			m.EntityNames = clearPadding(vals.Strings)
		case "NUMS":
			m.RegionNumbers = vals.Ints
		case "MEASRMNT":
			m.Measurements = vals.Strings
		case "UNITS":
			m.Units = vals.Strings
		}
	}
}

// applyDimens unpacks the DIMENS section: NLIST, then the grid extents.
// Item 5 is unused; item 6 is the originating restart step.
func (m *Model) applyDimens(dimens []int) {
	get := func(i int) int {
		if i < len(dimens) {
			return dimens[i]
		}

		return 0
	}

	m.NList = get(0)
	m.Nx = get(1)
	m.Ny = get(2)
	m.Nz = get(3)
	m.RestartStep = get(5)
}

// applyStartDate converts the STARTDAT section into a timestamp. The sixth
// item is the seconds of the start time expressed as integer microseconds
// and is split into whole seconds and the sub-second remainder.
func (m *Model) applyStartDate(startdat []int) {
	get := func(i int) int {
		if i < len(startdat) {
			return startdat[i]
		}

		return 0
	}

	day, month, year := get(0), get(1), get(2)
	hour, minute := get(3), get(4)
	micros := get(5)

	m.StartDate = time.Date(year, time.Month(month), day, hour, minute,
		micros/1_000_000, (micros%1_000_000)*1000, time.UTC)
}

// clearPadding maps the WGNAMES padding sentinel to the empty string.
func clearPadding(names []string) []string {
	for i, name := range names {
		if name == format.NamePad {
			names[i] = ""
		}
	}

	return names
}

// derive builds the unique ordered well, group and vector name lists from
// the keyword/entity pairs. First appearance wins; empty names are dropped.
func (m *Model) derive() {
	n := min(len(m.Keywords), len(m.EntityNames))
	seenWell := make(map[string]bool)
	seenGroup := make(map[string]bool)
	seenVector := make(map[string]bool)

	for i := 0; i < n; i++ {
		keyword, entity := m.Keywords[i], m.EntityNames[i]
		if keyword == "" {
			continue
		}

		switch keyword[0] {
		case 'W':
			if entity != "" && !seenWell[entity] {
				seenWell[entity] = true
				m.WellNames = append(m.WellNames, entity)
			}
		case 'G':
			if entity != "" && !seenGroup[entity] {
				seenGroup[entity] = true
				m.GroupNames = append(m.GroupNames, entity)
			}
		}

		if !seenVector[keyword] {
			seenVector[keyword] = true
			m.VectorNames = append(m.VectorNames, keyword)
		}
	}
}

// Unit returns the unit label of the vector at the given column index, empty
// when the UNITS section was absent or shorter.
func (m *Model) Unit(column int) string {
	if column < 0 || column >= len(m.Units) {
		return ""
	}

	return m.Units[column]
}
