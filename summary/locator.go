package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/resfile/unsmry/errs"
	"github.com/resfile/unsmry/internal/hash"
	"github.com/resfile/unsmry/smspec"
)

// Resolved is the outcome of a vector lookup: the column index into every
// per-step value row, and the sign to apply to every value read from that
// column. Sign is -1 only for region-to-region flow vectors stored with the
// reversed direction.
type Resolved struct {
	Index int
	Sign  float64
}

// interRegionMultiplier packs two region numbers into one combined code:
// r1 + interRegionMultiplier*(r2+interRegionOffset).
const (
	interRegionMultiplier = 32768
	interRegionOffset     = 10
)

// scalarKeywords is the fixed set of vectors carrying no entity identifier:
// simulation clocks plus the elapsed/timestep/convergence counters.
var scalarKeywords = map[string]bool{
	"TIME":     true,
	"YEARS":    true,
	"DAY":      true,
	"MONTH":    true,
	"YEAR":     true,
	"ELAPSED":  true,
	"TIMESTEP": true,
	"NEWTON":   true,
	"NLINEARS": true,
	"MLINEARS": true,
	"MSUMLINS": true,
	"MSUMNEWT": true,
	"TCPU":     true,
	"TCPUDAY":  true,
	"TCPUTS":   true,
}

// locator resolves (keyword, identifier) pairs to column indexes against the
// specification metadata.
//
// Lookups run against four hash indexes keyed on the match-field subsets the
// keyword categories use, built once over the parallel sequences. The first
// occurrence of each key wins, matching a forward scan for the first row
// where all listed fields agree. Every hit is verified against the parallel
// slices before use, so a hash collision can cost a miss at worst, never a
// wrong column.
type locator struct {
	model *smspec.Model

	byKeyword          map[uint64]int
	byKeywordEntity    map[uint64]int
	byKeywordNum       map[uint64]int
	byKeywordEntityNum map[uint64]int
}

func newLocator(model *smspec.Model) *locator {
	l := &locator{
		model:              model,
		byKeyword:          make(map[uint64]int),
		byKeywordEntity:    make(map[uint64]int),
		byKeywordNum:       make(map[uint64]int),
		byKeywordEntityNum: make(map[uint64]int),
	}

	n := len(model.Keywords)
	for i := 0; i < n; i++ {
		keyword := model.Keywords[i]
		entity := l.entityAt(i)
		num := l.numAt(i)

		record := func(m map[uint64]int, key uint64) {
			if _, ok := m[key]; !ok {
				m[key] = i
			}
		}
		record(l.byKeyword, hash.ID(keyword))
		record(l.byKeywordEntity, hash.ID(keyword, entity))
		record(l.byKeywordNum, hash.ID(keyword, strconv.Itoa(num)))
		record(l.byKeywordEntityNum, hash.ID(keyword, entity, strconv.Itoa(num)))
	}

	return l
}

// entityAt and numAt tolerate WGNAMES/NUMS sections shorter than KEYWORDS;
// absent fields behave as empty/zero.
func (l *locator) entityAt(i int) string {
	if i < len(l.model.EntityNames) {
		return l.model.EntityNames[i]
	}

	return ""
}

func (l *locator) numAt(i int) int {
	if i < len(l.model.RegionNumbers) {
		return l.model.RegionNumbers[i]
	}

	return 0
}

func (l *locator) lookupKeyword(keyword string) (int, bool) {
	i, ok := l.byKeyword[hash.ID(keyword)]
	if !ok || l.model.Keywords[i] != keyword {
		return 0, false
	}

	return i, true
}

func (l *locator) lookupEntity(keyword, entity string) (int, bool) {
	i, ok := l.byKeywordEntity[hash.ID(keyword, entity)]
	if !ok || l.model.Keywords[i] != keyword || l.entityAt(i) != entity {
		return 0, false
	}

	return i, true
}

func (l *locator) lookupNum(keyword string, num int) (int, bool) {
	i, ok := l.byKeywordNum[hash.ID(keyword, strconv.Itoa(num))]
	if !ok || l.model.Keywords[i] != keyword || l.numAt(i) != num {
		return 0, false
	}

	return i, true
}

func (l *locator) lookupEntityNum(keyword, entity string, num int) (int, bool) {
	i, ok := l.byKeywordEntityNum[hash.ID(keyword, entity, strconv.Itoa(num))]
	if !ok || l.model.Keywords[i] != keyword || l.entityAt(i) != entity || l.numAt(i) != num {
		return 0, false
	}

	return i, true
}

// resolve maps a vector keyword and its identifier to a column index,
// dispatching on the keyword's leading characters into the category rules of
// the format.
func (l *locator) resolve(keyword, identifier string) (Resolved, error) {
	if scalarKeywords[keyword] {
		return l.keywordOnly(keyword, identifier)
	}
	if keyword == "" {
		return Resolved{}, &errs.UnsupportedKeywordError{Keyword: keyword}
	}

	switch keyword[0] {
	case 'A':
		// Aquifer vectors carry the aquifer number in the region field.
		num, err := parseInts(keyword, identifier, 1)
		if err != nil {
			return Resolved{}, err
		}

		return l.numOnly(keyword, identifier, num[0])

	case 'B':
		return l.blockCell(keyword, identifier)

	case 'C':
		entity, num, err := parseNameInt(keyword, identifier)
		if err != nil {
			return Resolved{}, err
		}

		return l.entityAndNum(keyword, identifier, entity, num)

	case 'E', 'F':
		return l.keywordOnly(keyword, identifier)

	case 'G', 'N', 'P':
		return l.entityOnly(keyword, identifier)

	case 'L':
		// Local-grid vectors (LB/LC/LW prefixes) are not implemented.
		return Resolved{}, &errs.UnsupportedKeywordError{Keyword: keyword}

	case 'R':
		return l.regionFamily(keyword, identifier)

	case 'S':
		entity, num, err := parseNameInt(keyword, identifier)
		if err != nil {
			return Resolved{}, err
		}

		return l.entityAndNum(keyword, identifier, entity, num)

	case 'W':
		return l.entityOnly(keyword, identifier)

	default:
		return Resolved{}, &errs.UnsupportedKeywordError{Keyword: keyword}
	}
}

func (l *locator) keywordOnly(keyword, identifier string) (Resolved, error) {
	if i, ok := l.lookupKeyword(keyword); ok {
		return Resolved{Index: i, Sign: 1}, nil
	}

	return Resolved{}, &errs.VectorNotFoundError{Keyword: keyword, Identifier: identifier}
}

func (l *locator) entityOnly(keyword, identifier string) (Resolved, error) {
	if i, ok := l.lookupEntity(keyword, identifier); ok {
		return Resolved{Index: i, Sign: 1}, nil
	}

	return Resolved{}, &errs.VectorNotFoundError{Keyword: keyword, Identifier: identifier}
}

func (l *locator) numOnly(keyword, identifier string, num int) (Resolved, error) {
	if i, ok := l.lookupNum(keyword, num); ok {
		return Resolved{Index: i, Sign: 1}, nil
	}

	return Resolved{}, &errs.VectorNotFoundError{Keyword: keyword, Identifier: identifier}
}

func (l *locator) entityAndNum(keyword, identifier, entity string, num int) (Resolved, error) {
	if i, ok := l.lookupEntityNum(keyword, entity, num); ok {
		return Resolved{Index: i, Sign: 1}, nil
	}

	return Resolved{}, &errs.VectorNotFoundError{Keyword: keyword, Identifier: identifier}
}

// blockCell resolves a block vector identified by "ix iy iz" grid
// coordinates, linearized into the region field with x fastest.
func (l *locator) blockCell(keyword, identifier string) (Resolved, error) {
	xyz, err := parseInts(keyword, identifier, 3)
	if err != nil {
		return Resolved{}, err
	}
	ix, iy, iz := xyz[0], xyz[1], xyz[2]
	num := (iz-1)*l.model.Nx*l.model.Ny + (iy-1)*l.model.Nx + ix

	return l.numOnly(keyword, identifier, num)
}

// regionFamily splits the R-prefixed keyword space: region-to-region flow
// vectors (third character F), component-qualified region vectors (RC...M),
// and general region vectors matched on the entity name.
func (l *locator) regionFamily(keyword, identifier string) (Resolved, error) {
	if strings.HasPrefix(keyword, "RC") && strings.HasSuffix(keyword, "M") {
		return l.regionComponent(keyword, identifier)
	}
	if len(keyword) >= 3 && keyword[2] == 'F' {
		return l.interRegion(keyword, identifier)
	}

	return l.entityOnly(keyword, identifier)
}

// interRegion resolves an "r1 r2" directional flow vector. The stored
// direction may be either order: the r1-to-r2 packing is tried first with
// sign +1, then the reverse packing with sign -1. When both codes miss, the
// error reports both, since either packing could be the one the file lacks.
func (l *locator) interRegion(keyword, identifier string) (Resolved, error) {
	pair, err := parseInts(keyword, identifier, 2)
	if err != nil {
		return Resolved{}, err
	}
	r1, r2 := pair[0], pair[1]

	forward := r1 + interRegionMultiplier*(r2+interRegionOffset)
	if i, ok := l.lookupNum(keyword, forward); ok {
		return Resolved{Index: i, Sign: 1}, nil
	}

	reverse := r2 + interRegionMultiplier*(r1+interRegionOffset)
	if i, ok := l.lookupNum(keyword, reverse); ok {
		return Resolved{Index: i, Sign: -1}, nil
	}

	return Resolved{}, &errs.VectorNotFoundError{
		Keyword:    keyword,
		Identifier: identifier,
		Codes:      []int{forward, reverse},
	}
}

// regionComponent resolves a "region component" vector. The combined code
// uses the same packing as inter-region flows; no entity name applies to
// this keyword class.
func (l *locator) regionComponent(keyword, identifier string) (Resolved, error) {
	pair, err := parseInts(keyword, identifier, 2)
	if err != nil {
		return Resolved{}, err
	}
	code := pair[0] + interRegionMultiplier*(pair[1]+interRegionOffset)

	if i, ok := l.lookupNum(keyword, code); ok {
		return Resolved{Index: i, Sign: 1}, nil
	}

	return Resolved{}, &errs.VectorNotFoundError{
		Keyword:    keyword,
		Identifier: identifier,
		Codes:      []int{code},
	}
}

// parseInts splits an identifier into exactly n whitespace-separated
// integers.
func parseInts(keyword, identifier string, n int) ([]int, error) {
	fields := strings.Fields(identifier)
	if len(fields) != n {
		return nil, fmt.Errorf("%w: keyword %q wants %d integer field(s), got %q",
			errs.ErrBadIdentifier, keyword, n, identifier)
	}

	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: keyword %q, non-integer field %q in %q",
				errs.ErrBadIdentifier, keyword, f, identifier)
		}
		out[i] = v
	}

	return out, nil
}

// parseNameInt splits a "name number" identifier, as used by completion and
// segment vectors.
func parseNameInt(keyword, identifier string) (string, int, error) {
	fields := strings.Fields(identifier)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: keyword %q wants \"name number\", got %q",
			errs.ErrBadIdentifier, keyword, identifier)
	}

	num, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: keyword %q, non-integer field %q in %q",
			errs.ErrBadIdentifier, keyword, fields[1], identifier)
	}

	return fields[0], num, nil
}
