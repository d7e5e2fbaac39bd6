// Package section implements the record framing protocol shared by both
// halves of a summary dataset.
//
// Every logical field group on the wire is framed as a 4-byte big-endian
// length, the payload, and the same length repeated; disagreeing markers are
// fatal corruption. A section is an 8-character name, a declared element
// count and a 4-character type tag (one framed 16-byte group), followed by
// framed payload blocks until the declared count is met. One section may span
// several blocks when the count exceeds a single block's capacity.
//
// Two access modes are provided. ReadAll materializes a whole section into a
// Values container. ReadAt extracts a single element, seeking past every
// block that cannot contain the target, which keeps a lookup at O(1) decode
// operations regardless of the section size.
package section
