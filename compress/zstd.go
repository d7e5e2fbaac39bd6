package compress

// ZstdCompressor implements the Codec interface with Zstandard compression.
//
// Zstd gives the best ratio of the supported algorithms and is the usual
// choice for long-term archival of finished simulation runs, where the files
// are written once and reread rarely.
//
// Two implementations exist behind build tags: the default pure-Go
// implementation (klauspost/compress/zstd) and a cgo implementation
// (valyala/gozstd) selected with -tags gozstd for hosts where the native
// library is worth the build complexity.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
