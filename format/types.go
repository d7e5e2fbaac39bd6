package format

import "strings"

type (
	// RecordType identifies the element type of a summary-file section,
	// encoded on the wire as a 4-character tag.
	RecordType string

	// CompressionType identifies the archive compression wrapped around a
	// whole summary file, detected from the file-name suffix.
	CompressionType uint8

	// FileKind distinguishes the two halves of a summary dataset.
	FileKind uint8
)

const (
	TypeInt    RecordType = "INTE" // 4-byte big-endian integer
	TypeReal   RecordType = "REAL" // 4-byte big-endian IEEE float
	TypeDouble RecordType = "DOUB" // 8-byte little-endian IEEE float
	TypeChar   RecordType = "CHAR" // 8-byte space-padded text
	TypeLogic  RecordType = "LOGI" // 4-byte big-endian integer, true iff > 0

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindSpec FileKind = 0x1 // KindSpec is the .SMSPEC specification file.
	KindData FileKind = 0x2 // KindData is the .UNSMRY time-series data file.
)

const (
	// SpecSuffix and DataSuffix are the canonical file-name suffixes of the
	// two halves of a dataset.
	SpecSuffix = ".SMSPEC"
	DataSuffix = ".UNSMRY"

	// NamePad is the sentinel token padding unused WGNAMES entries; it maps
	// to the empty string in the decoded model.
	NamePad = ":+:+:+:+"

	// NameLen and TagLen are the fixed widths of the two text encodings.
	NameLen = 8
	TagLen  = 4
)

// Width returns the element width in bytes for the record type, or 0 for an
// unrecognized tag.
func (t RecordType) Width() int {
	switch t {
	case TypeDouble, TypeChar:
		return 8
	case TypeInt, TypeReal, TypeLogic:
		return 4
	default:
		return 0
	}
}

// Valid reports whether the tag belongs to the closed set of record types.
func (t RecordType) Valid() bool {
	return t.Width() != 0
}

func (t RecordType) String() string {
	return string(t)
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k FileKind) String() string {
	switch k {
	case KindSpec:
		return "SMSPEC"
	case KindData:
		return "UNSMRY"
	default:
		return "Unknown"
	}
}

// SectionNames returns the closed set of section names legal in files of the
// given kind. An empty name terminates either stream and is not listed.
func (k FileKind) SectionNames() []string {
	switch k {
	case KindSpec:
		return []string{
			"INTEHEAD", "RESTART", "DIMENS", "STARTDAT", "RUNTIMEI",
			"RUNTIMED", "KEYWORDS", "WGNAMES", "NUMS", "MEASRMNT", "UNITS",
		}
	case KindData:
		return []string{"SEQHDR", "MINISTEP", "PARAMS"}
	default:
		return nil
	}
}

// archiveSuffixes maps optional archive suffixes appended after SpecSuffix or
// DataSuffix to the compression wrapped around the whole file.
var archiveSuffixes = map[string]CompressionType{
	".zst": CompressionZstd,
	".s2":  CompressionS2,
	".lz4": CompressionLZ4,
}

// DetectCompression splits an archive suffix off the given path and returns
// the bare path together with the compression it implies. Paths without a
// recognized archive suffix are returned unchanged with CompressionNone.
func DetectCompression(path string) (string, CompressionType) {
	for suffix, compression := range archiveSuffixes {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix), compression
		}
	}

	return path, CompressionNone
}

// ArchiveSuffix returns the file-name suffix for the compression type, empty
// for CompressionNone.
func ArchiveSuffix(c CompressionType) string {
	for suffix, compression := range archiveSuffixes {
		if compression == c {
			return suffix
		}
	}

	return ""
}
