package summary

import (
	"fmt"

	"github.com/resfile/unsmry/errs"
	"github.com/resfile/unsmry/format"
	"github.com/resfile/unsmry/section"
)

// table is the fully materialized contents of a data file: one row per
// report step, index-aligned with the specification metadata, plus the
// retained sequence headers and ministep numbers. Built once and immutable.
type table struct {
	rows       [][]float64
	seqHeaders []int
	ministeps  []int
}

// readTable scans the data file section-by-section until end of stream,
// decoding every PARAMS section into one row, in file order.
func readTable(path string) (*table, error) {
	cur, err := section.Open(path)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	t := &table{}
	for {
		hdr, err := cur.ReadHeader()
		if err != nil {
			if section.IsEndOfStream(err) {
				return t, nil
			}

			return nil, err
		}
		if err := section.Expect(format.KindData, hdr.Name); err != nil {
			return nil, err
		}

		vals, err := cur.ReadAll(hdr)
		if err != nil {
			return nil, err
		}

		switch hdr.Name {
		case "SEQHDR":
			t.seqHeaders = append(t.seqHeaders, vals.Ints...)
		case "MINISTEP":
			t.ministeps = append(t.ministeps, vals.Ints...)
		case "PARAMS":
			t.rows = append(t.rows, vals.Floats())
		}
	}
}

// scanColumn re-scans the data file and extracts one column: the header and
// ministep sections of every repeating group are seeked past without
// decoding, and the sparse reader pulls exactly one element out of each
// PARAMS section.
func scanColumn(path string, index int) ([]float64, error) {
	cur, err := section.Open(path)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	var out []float64
	for {
		hdr, err := cur.ReadHeader()
		if err != nil {
			if section.IsEndOfStream(err) {
				return out, nil
			}

			return nil, err
		}
		if err := section.Expect(format.KindData, hdr.Name); err != nil {
			return nil, err
		}

		if hdr.Name != "PARAMS" {
			if err := cur.SkipSection(hdr); err != nil {
				return nil, err
			}
			continue
		}

		val, ok, err := cur.ReadAt(hdr, index)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: column %d outside PARAMS section of %d elements",
				errs.ErrVectorNotFound, index, hdr.Count)
		}
		out = append(out, val.Float())
	}
}

// vectorSource is the per-mode access strategy behind Dataset.Vector: a pure
// in-memory column projection in eager mode, a fresh sparse file scan per
// request in on-demand mode. Both yield identical ordered sequences for the
// same column.
type vectorSource interface {
	column(index int) ([]float64, error)
}

// tableSource projects columns out of the eager table.
type tableSource struct {
	table *table
}

func (s *tableSource) column(index int) ([]float64, error) {
	out := make([]float64, len(s.table.rows))
	for i, row := range s.table.rows {
		if index >= len(row) {
			return nil, fmt.Errorf("%w: column %d outside row %d of %d elements",
				errs.ErrVectorNotFound, index, i, len(row))
		}
		out[i] = row[index]
	}

	return out, nil
}

// scanSource re-opens the data file for every request. Each request owns its
// cursor, so concurrent requests need no coordination.
type scanSource struct {
	path string
}

func (s *scanSource) column(index int) ([]float64, error) {
	return scanColumn(s.path, index)
}
