package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagValueHeader_RoundTrip(t *testing.T) {
	// spec E1: version 1234, container "system", 8 flags.
	h := FlagValueHeader{
		Version:            1234,
		Container:          "system",
		NumFlags:           8,
	}
	h.BooleanValueOffset = uint32(h.Size())
	h.FileSize = h.BooleanValueOffset + h.NumFlags

	got, offset, err := ParseFlagValueHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, h.Size(), offset)
}

func TestFlagValueHeader_RejectsHigherVersion(t *testing.T) {
	h := NewFlagValueHeader(5, "system", 1)

	require.NoError(t, CheckVersion(h.Version, 10))
	require.Error(t, CheckVersion(h.Version, 4))
}
