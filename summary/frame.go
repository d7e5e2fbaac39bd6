package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// VectorRef names one vector for tabular extraction.
type VectorRef struct {
	Keyword    string
	Identifier string
}

// Label renders the reference the way frame columns are titled.
func (r VectorRef) Label() string {
	if r.Identifier == "" {
		return r.Keyword
	}

	return r.Keyword + ":" + r.Identifier
}

// Frame is a row-major tabular view over a set of vectors: one column per
// requested vector, one row per report step. It is a presentation
// collaborator over decoded values, not part of the decoding core.
type Frame struct {
	Columns []string
	Units   []string
	Rows    [][]float64
}

// Frame extracts the requested vectors into a tabular frame. All vectors of
// one dataset have the same length, so the rows are rectangular; a dataset
// whose vectors disagree in length is corrupt and is reported as an error.
func (d *Dataset) Frame(refs ...VectorRef) (*Frame, error) {
	f := &Frame{
		Columns: make([]string, len(refs)),
		Units:   make([]string, len(refs)),
	}

	columns := make([][]float64, len(refs))
	steps := -1
	for i, ref := range refs {
		res, err := d.loc.resolve(ref.Keyword, ref.Identifier)
		if err != nil {
			return nil, err
		}

		values, err := d.Vector(ref.Keyword, ref.Identifier)
		if err != nil {
			return nil, err
		}
		if steps >= 0 && len(values) != steps {
			return nil, fmt.Errorf("vector %s has %d steps, expected %d",
				ref.Label(), len(values), steps)
		}
		steps = len(values)

		columns[i] = values
		f.Columns[i] = ref.Label()
		f.Units[i] = d.spec.Unit(res.Index)
	}

	if steps < 0 {
		steps = 0
	}
	f.Rows = make([][]float64, steps)
	for row := range f.Rows {
		f.Rows[row] = make([]float64, len(refs))
		for col := range refs {
			f.Rows[row][col] = columns[col][row]
		}
	}

	return f, nil
}

// WriteCSV writes the frame as CSV: one header record of column labels,
// then one record per report step.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns); err != nil {
		return err
	}

	record := make([]string, len(f.Columns))
	for _, row := range f.Rows {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
