package fmod

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionNumberDecoding(t *testing.T) {
	tests := []struct {
		encoded VersionNumber
		str     string
		major   int
		minor   int
		patch   int
	}{
		{0x00020205, "2.02.05", 2, 2, 5},
		{0x00011012, "1.10.12", 1, 10, 12},
		{0x00020000, "2.00.00", 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			require.Equal(t, tt.major, tt.encoded.Major())
			require.Equal(t, tt.minor, tt.encoded.Minor())
			require.Equal(t, tt.patch, tt.encoded.Patch())
			require.Equal(t, tt.str, tt.encoded.String())
		})
	}
}

func TestHeaderVersion(t *testing.T) {
	require.Equal(t, "2.02.05", HeaderVersion.String())
}
