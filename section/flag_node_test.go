package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagNode_RoundTrip(t *testing.T) {
	n := FlagNode{
		PackageID:  0,
		FlagName:   "enabled_rw",
		FlagType:   FlagTypeBoolean,
		FlagID:     2,
		NextOffset: NoNext,
	}

	buf := make([]byte, n.Size())
	end := n.WriteToSlice(buf, 0)
	require.Equal(t, n.Size(), end)

	got, offset, err := ParseFlagNode(buf, 0)
	require.NoError(t, err)
	require.Equal(t, n, got)
	require.Equal(t, n.Size(), offset)
}
