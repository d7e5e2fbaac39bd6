package section

import (
	"math"
	"strings"

	"github.com/resfile/unsmry/errs"
	"github.com/resfile/unsmry/format"
)

// Values holds one fully materialized section. Exactly one of the element
// slices is populated, selected by Type; element order matches file order
// across all of the section's blocks.
type Values struct {
	Type    format.RecordType
	Ints    []int
	Reals   []float32
	Doubles []float64
	Strings []string
	Bools   []bool
}

// Len returns the number of decoded elements.
func (v *Values) Len() int {
	switch v.Type {
	case format.TypeInt:
		return len(v.Ints)
	case format.TypeReal:
		return len(v.Reals)
	case format.TypeDouble:
		return len(v.Doubles)
	case format.TypeChar:
		return len(v.Strings)
	case format.TypeLogic:
		return len(v.Bools)
	default:
		return 0
	}
}

// Float returns element i of a numeric section as float64. CHAR and LOGI
// sections have no numeric view and yield NaN.
func (v *Values) Float(i int) float64 {
	switch v.Type {
	case format.TypeInt:
		return float64(v.Ints[i])
	case format.TypeReal:
		return float64(v.Reals[i])
	case format.TypeDouble:
		return v.Doubles[i]
	default:
		return math.NaN()
	}
}

// Floats returns the whole numeric section as a freshly allocated float64
// slice.
func (v *Values) Floats() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.Float(i)
	}

	return out
}

// appendPayload decodes one block's payload and appends its elements.
// Partial trailing bytes that do not fill a whole element are ignored, the
// way the block capacity arithmetic floors the element count.
func (v *Values) appendPayload(payload []byte) error {
	width := v.Type.Width()
	if width == 0 {
		return &errs.UnknownRecordTypeError{Tag: string(v.Type)}
	}

	n := len(payload) / width
	for i := 0; i < n; i++ {
		b := payload[i*width : (i+1)*width]
		switch v.Type {
		case format.TypeInt:
			v.Ints = append(v.Ints, int(bigEndian.Uint32(b)))
		case format.TypeReal:
			v.Reals = append(v.Reals, math.Float32frombits(bigEndian.Uint32(b)))
		case format.TypeDouble:
			v.Doubles = append(v.Doubles, math.Float64frombits(littleEndian.Uint64(b)))
		case format.TypeChar:
			v.Strings = append(v.Strings, strings.TrimSpace(string(b)))
		case format.TypeLogic:
			v.Bools = append(v.Bools, bigEndian.Uint32(b) > 0)
		}
	}

	return nil
}

// Value is one element extracted by the sparse reader. The field selected by
// Type is populated.
type Value struct {
	Type   format.RecordType
	Int    int
	Real   float32
	Double float64
	Str    string
	Bool   bool
}

// Float returns a numeric element as float64, NaN for CHAR and LOGI.
func (v Value) Float() float64 {
	switch v.Type {
	case format.TypeInt:
		return float64(v.Int)
	case format.TypeReal:
		return float64(v.Real)
	case format.TypeDouble:
		return v.Double
	default:
		return math.NaN()
	}
}
