// Package hash computes the composite lookup keys of the vector index.
package hash

import "github.com/cespare/xxhash/v2"

// sep separates fields inside a composite key. Record separator cannot occur
// in keyword or entity text, which is plain printable ASCII on the wire.
const sep = "\x1e"

// ID computes the xxHash64 of the given fields joined with a separator that
// cannot appear in any field. Lookups hashing the same fields in the same
// order produce the same key.
func ID(fields ...string) uint64 {
	var d xxhash.Digest
	d.Reset()
	for i, f := range fields {
		if i > 0 {
			_, _ = d.WriteString(sep)
		}
		_, _ = d.WriteString(f)
	}

	return d.Sum64()
}
