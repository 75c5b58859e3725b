package storage

import (
	"testing"

	"github.com/flagstorage/aconfig/flags"
	"github.com/flagstorage/aconfig/section"
	"github.com/stretchr/testify/require"
)

// e3Packages builds spec scenario E3's flag map fixture: three packages
// whose sorted-name flag_id assignment is spelled out explicitly there.
func e3Packages() []flags.FlagPackage {
	return []flags.FlagPackage{
		{
			PackageName: "pkg0",
			BooleanFlags: []flags.ParsedFlag{
				{Name: "enabled_ro"},
				{Name: "enabled_rw"},
				{Name: "disabled_rw"},
			},
		},
		{
			PackageName: "pkg1",
			BooleanFlags: []flags.ParsedFlag{
				{Name: "disabled_ro"},
				{Name: "enabled_fixed_ro"},
				{Name: "enabled_ro"},
			},
		},
		{
			PackageName: "pkg2",
			BooleanFlags: []flags.ParsedFlag{
				{Name: "enabled_fixed_ro"},
				{Name: "enabled_ro"},
			},
		},
	}
}

func TestBuildFlagMap_E3Assignment(t *testing.T) {
	buf, err := BuildFlagMap("system", e3Packages())
	require.NoError(t, err)

	cases := []struct {
		packageID uint32
		name      string
		flagID    uint16
	}{
		{0, "enabled_ro", 1},
		{0, "enabled_rw", 2},
		{0, "disabled_rw", 0},
		{1, "disabled_ro", 0},
		{1, "enabled_fixed_ro", 1},
		{1, "enabled_ro", 2},
		{2, "enabled_fixed_ro", 0},
		{2, "enabled_ro", 1},
	}

	for _, c := range cases {
		flagType, flagID, found, err := FindFlag(buf, c.packageID, c.name)
		require.NoError(t, err)
		require.Truef(t, found, "expected to find %s in package %d", c.name, c.packageID)
		require.Equal(t, section.FlagTypeBoolean, flagType)
		require.Equal(t, c.flagID, flagID)
	}
}

func TestBuildFlagMap_MissingFlagNotFound(t *testing.T) {
	buf, err := BuildFlagMap("system", e3Packages())
	require.NoError(t, err)

	_, _, found, err := FindFlag(buf, 0, "missing")
	require.NoError(t, err)
	require.False(t, found)
}

func TestBuildFlagMap_Determinism(t *testing.T) {
	first, err := BuildFlagMap("system", e3Packages())
	require.NoError(t, err)

	second, err := BuildFlagMap("system", e3Packages())
	require.NoError(t, err)

	require.Equal(t, first, second)
}
