package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagInfoHeader_RoundTrip(t *testing.T) {
	h := FlagInfoHeader{
		Version:           1234,
		Container:         "system",
		NumFlags:          8,
	}
	h.BooleanFlagOffset = uint32(h.Size())
	h.FileSize = h.BooleanFlagOffset + h.NumFlags

	got, offset, err := ParseFlagInfoHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, h.Size(), offset)
}

func TestFlagInfoNode_BitPacking(t *testing.T) {
	rw := FlagInfoNode{IsReadWrite: true}
	require.Equal(t, byte(0x1), rw.Byte())
	require.Equal(t, rw, ParseFlagInfoNode(rw.Byte()))

	ro := FlagInfoNode{IsReadWrite: false}
	require.Equal(t, byte(0x0), ro.Byte())
	require.Equal(t, ro, ParseFlagInfoNode(ro.Byte()))

	// reserved bits must be ignored on read.
	require.Equal(t, FlagInfoNode{IsReadWrite: true}, ParseFlagInfoNode(0xFD|0x1))
}
