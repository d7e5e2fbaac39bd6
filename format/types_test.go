package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordType_Width(t *testing.T) {
	tests := []struct {
		tag   RecordType
		width int
	}{
		{TypeInt, 4},
		{TypeReal, 4},
		{TypeLogic, 4},
		{TypeDouble, 8},
		{TypeChar, 8},
		{"XXXX", 0},
		{"", 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.width, tt.tag.Width(), "tag %q", tt.tag)
		require.Equal(t, tt.width != 0, tt.tag.Valid(), "tag %q", tt.tag)
	}
}

func TestFileKind_SectionNames(t *testing.T) {
	require.Equal(t, []string{
		"INTEHEAD", "RESTART", "DIMENS", "STARTDAT", "RUNTIMEI",
		"RUNTIMED", "KEYWORDS", "WGNAMES", "NUMS", "MEASRMNT", "UNITS",
	}, KindSpec.SectionNames())
	require.Equal(t, []string{"SEQHDR", "MINISTEP", "PARAMS"}, KindData.SectionNames())
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path     string
		wantPath string
		wantType CompressionType
	}{
		{"CASE.UNSMRY", "CASE.UNSMRY", CompressionNone},
		{"CASE.UNSMRY.zst", "CASE.UNSMRY", CompressionZstd},
		{"CASE.SMSPEC.s2", "CASE.SMSPEC", CompressionS2},
		{"CASE.SMSPEC.lz4", "CASE.SMSPEC", CompressionLZ4},
	}
	for _, tt := range tests {
		path, compression := DetectCompression(tt.path)
		require.Equal(t, tt.wantPath, path)
		require.Equal(t, tt.wantType, compression)
	}
}

func TestArchiveSuffix(t *testing.T) {
	require.Equal(t, ".zst", ArchiveSuffix(CompressionZstd))
	require.Equal(t, "", ArchiveSuffix(CompressionNone))

	// Suffix and detection agree both ways.
	for _, compression := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		path, detected := DetectCompression("X.UNSMRY" + ArchiveSuffix(compression))
		require.Equal(t, "X.UNSMRY", path)
		require.Equal(t, compression, detected)
	}
}
