package storage

import (
	"testing"

	"github.com/flagstorage/aconfig/errs"
	"github.com/flagstorage/aconfig/flags"
	"github.com/flagstorage/aconfig/format"
	"github.com/flagstorage/aconfig/section"
	"github.com/stretchr/testify/require"
)

// e1Packages builds spec scenario E1's fixture: 3 packages with 3/3/2
// booleans, global state vector
// [false, true, false, false, true, true, false, true].
func e1Packages() []flags.FlagPackage {
	state := func(enabled bool) format.State {
		if enabled {
			return format.StateEnabled
		}
		return format.StateDisabled
	}

	return []flags.FlagPackage{
		{
			PackageName:       "pkg0",
			BooleanStartIndex: 0,
			BooleanFlags: []flags.ParsedFlag{
				{Name: "a", State: state(false)},
				{Name: "b", State: state(true)},
				{Name: "c", State: state(false)},
			},
		},
		{
			PackageName:       "pkg1",
			BooleanStartIndex: 3,
			BooleanFlags: []flags.ParsedFlag{
				{Name: "d", State: state(false)},
				{Name: "e", State: state(true)},
				{Name: "f", State: state(true)},
			},
		},
		{
			PackageName:       "pkg2",
			BooleanStartIndex: 6,
			BooleanFlags: []flags.ParsedFlag{
				{Name: "g", State: state(false)},
				{Name: "h", State: state(true)},
			},
		},
	}
}

func TestBuildFlagValueList_E1ByteVector(t *testing.T) {
	buf, err := BuildFlagValueList("system", e1Packages(), WithVersion(1234))
	require.NoError(t, err)

	header, _, err := section.ParseFlagValueHeader(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(1234), header.Version)
	require.Equal(t, uint32(8), header.NumFlags)
	require.Equal(t, header.BooleanValueOffset+8, header.FileSize)
	require.Equal(t, int(header.FileSize), len(buf))

	want := []bool{false, true, false, false, true, true, false, true}
	for i, w := range want {
		got, err := FindBooleanFlagValue(buf, uint32(i)) //nolint: gosec
		require.NoError(t, err)
		require.Equal(t, w, got, "slot %d", i)
	}
}

func TestUpdateBooleanFlagValue_E4RoundTrip(t *testing.T) {
	buf, err := BuildFlagValueList("system", e1Packages(), WithVersion(1234))
	require.NoError(t, err)

	header, _, err := section.ParseFlagValueHeader(buf)
	require.NoError(t, err)

	for i := uint32(0); i < 8; i++ {
		for _, v := range []bool{true, false} {
			offset, err := UpdateBooleanFlagValue(buf, i, v)
			require.NoError(t, err)
			require.Equal(t, int(header.BooleanValueOffset+i), offset)

			got, err := FindBooleanFlagValue(buf, i)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

func TestUpdateBooleanFlagValue_OnlyOneByteChanges(t *testing.T) {
	buf, err := BuildFlagValueList("system", e1Packages(), WithVersion(1234))
	require.NoError(t, err)

	before := make([]byte, len(buf))
	copy(before, buf)

	_, err = UpdateBooleanFlagValue(buf, 2, true)
	require.NoError(t, err)

	header, _, err := section.ParseFlagValueHeader(buf)
	require.NoError(t, err)
	changedOffset := int(header.BooleanValueOffset) + 2

	for i := range buf {
		if i == changedOffset {
			require.Equal(t, byte(1), buf[i])
			continue
		}
		require.Equal(t, before[i], buf[i], "byte %d changed unexpectedly", i)
	}
}

func TestFindBooleanFlagValue_E5OutOfRange(t *testing.T) {
	buf, err := BuildFlagValueList("system", e1Packages(), WithVersion(1234))
	require.NoError(t, err)

	_, err = FindBooleanFlagValue(buf, 8)
	require.ErrorIs(t, err, errs.ErrInvalidStorageFileOffset)
}

func TestFlagValueList_E6VersionMismatch(t *testing.T) {
	buf, err := BuildFlagValueList("system", e1Packages(), WithVersion(MaxSupportedFileVersion+1))
	require.NoError(t, err)

	_, err = FindBooleanFlagValue(buf, 0)
	require.ErrorIs(t, err, errs.ErrHigherStorageFileVersion)

	_, err = UpdateBooleanFlagValue(buf, 0, true)
	require.ErrorIs(t, err, errs.ErrHigherStorageFileVersion)
}

func TestBuildFlagValueList_Determinism(t *testing.T) {
	first, err := BuildFlagValueList("system", e1Packages())
	require.NoError(t, err)

	second, err := BuildFlagValueList("system", e1Packages())
	require.NoError(t, err)

	require.Equal(t, first, second)
}
