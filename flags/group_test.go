package flags

import (
	"testing"

	"github.com/flagstorage/aconfig/format"
	"github.com/stretchr/testify/require"
)

func flag(pkg, name, container string) ParsedFlag {
	return ParsedFlag{Package: pkg, Name: name, Container: container}
}

func TestGroupByPackage_FirstOccurrenceOrderAndStartIndex(t *testing.T) {
	parsed := []ParsedFlag{
		flag("pkg.b", "b1", "system"),
		flag("pkg.a", "a1", "system"),
		flag("pkg.b", "b2", "system"),
		flag("pkg.a", "a2", "vendor"), // different container, excluded
	}

	packages := GroupByPackage(parsed, "system")

	require.Len(t, packages, 2)
	require.Equal(t, "pkg.b", packages[0].PackageName)
	require.Equal(t, uint32(0), packages[0].BooleanStartIndex)
	require.Len(t, packages[0].BooleanFlags, 2)

	require.Equal(t, "pkg.a", packages[1].PackageName)
	require.Equal(t, uint32(2), packages[1].BooleanStartIndex)
	require.Len(t, packages[1].BooleanFlags, 1)
}

func TestFilterContainer_InliningContainerDropsDisabledReadOnly(t *testing.T) {
	packages := []FlagPackage{
		{
			PackageName: "pkg.a",
			BooleanFlags: []ParsedFlag{
				{Name: "keep_me", State: format.StateEnabled, Permission: format.PermissionReadOnly},
				{Name: "drop_me", State: format.StateDisabled, Permission: format.PermissionReadOnly},
				{Name: "keep_rw", State: format.StateDisabled, Permission: format.PermissionReadWrite},
			},
		},
	}

	out := FilterContainer("system", packages)

	require.Len(t, out[0].BooleanFlags, 2)
	names := []string{out[0].BooleanFlags[0].Name, out[0].BooleanFlags[1].Name}
	require.ElementsMatch(t, []string{"keep_me", "keep_rw"}, names)
	require.Equal(t, uint32(0), out[0].BooleanStartIndex)
}

func TestFilterContainer_NonInliningContainerKeepsEverything(t *testing.T) {
	packages := []FlagPackage{
		{
			PackageName: "pkg.a",
			BooleanFlags: []ParsedFlag{
				{Name: "drop_me_elsewhere", State: format.StateDisabled, Permission: format.PermissionReadOnly},
			},
		},
	}

	out := FilterContainer("com.example.apex", packages)

	require.Len(t, out[0].BooleanFlags, 1)
	// must be a copy, not an alias, of the input slice.
	out[0].PackageName = "mutated"
	require.Equal(t, "pkg.a", packages[0].PackageName)
}
