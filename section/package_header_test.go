package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageMapHeader_RoundTrip(t *testing.T) {
	h := PackageMapHeader{
		Version:      1234,
		Container:    "system",
		NumPackages:  3,
		BucketOffset: 20,
		NodeOffset:   48,
	}
	h.FileSize = uint32(h.Size() + 100)

	got, offset, err := ParsePackageMapHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, h.Size(), offset)
}

func TestPackageMapHeader_WrongFileType(t *testing.T) {
	h := NewFlagMapHeader(1, "system", 0)

	_, _, err := ParsePackageMapHeader(h.Bytes())
	require.Error(t, err)
}

func TestPackageMapHeader_ShortBuffer(t *testing.T) {
	_, _, err := ParsePackageMapHeader([]byte{1, 2, 3})
	require.Error(t, err)
}
