// Package compress provides the codecs used to read archived summary files.
//
// Summary datasets are often kept compressed at rest; a dataset root may
// carry .SMSPEC.zst / .UNSMRY.zst (or .s2, .lz4) instead of the bare files.
// The decoder inflates such a file fully into memory and runs the normal
// seekable cursor over the inflated bytes, so the framing protocol is
// identical for compressed and uncompressed inputs.
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Supported algorithms: None, Zstd, S2 and LZ4. The Zstd codec has a pure-Go
// implementation (default) and a cgo implementation selected with the gozstd
// build tag.
//
// All codecs are safe for concurrent use.
package compress
