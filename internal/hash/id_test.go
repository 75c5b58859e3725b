package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	a := ID(PackageKey("com.android.aconfig.storage.test_1"))
	b := ID(PackageKey("com.android.aconfig.storage.test_1"))

	require.Equal(t, a, b)
}

func TestID_DifferentInputsUsuallyDiffer(t *testing.T) {
	names := []string{
		"com.android.aconfig.storage.test_1",
		"com.android.aconfig.storage.test_2",
		"com.android.aconfig.storage.test_4",
	}

	seen := make(map[uint32]string)
	for _, n := range names {
		id := ID(PackageKey(n))
		if prev, ok := seen[id]; ok {
			t.Fatalf("unexpected hash collision between %q and %q", prev, n)
		}
		seen[id] = n
	}
}

func TestFlagKey_PackageIDIsPartOfTheKey(t *testing.T) {
	a := ID(FlagKey(0, "enabled_ro"))
	b := ID(FlagKey(1, "enabled_ro"))

	require.NotEqual(t, a, b, "same flag name in a different package must hash differently")
}

func TestFlagKey_EncodesPackageIDLittleEndian(t *testing.T) {
	key := FlagKey(0x04030201, "f")
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 'f'}, key)
}
