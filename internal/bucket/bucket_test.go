package bucket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount_KnownFixtures(t *testing.T) {
	// 3 packages and 8 flags are the fixture sizes used across the storage
	// test suite (E1-E6 in the format spec).
	require.Equal(t, uint32(7), Count(3))
	require.Equal(t, uint32(17), Count(8))
}

func TestCount_Zero(t *testing.T) {
	require.Equal(t, uint32(7), Count(0))
}

func TestCount_Monotonic(t *testing.T) {
	prev := Count(1)
	for n := uint32(2); n < 5000; n *= 3 {
		cur := Count(n)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestSlot_WithinRange(t *testing.T) {
	numBuckets := Count(8)
	for hash := uint32(0); hash < 1000; hash++ {
		slot := Slot(hash, numBuckets)
		require.Less(t, slot, numBuckets)
	}
}
