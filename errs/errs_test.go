package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesSentinel(t *testing.T) {
	err := Wrap(ErrInvalidStorageFileOffset, "flag_index 8")

	require.ErrorIs(t, err, ErrInvalidStorageFileOffset)
	require.Contains(t, err.Error(), "flag_index 8")
}

func TestWrap_DistinctSentinels(t *testing.T) {
	err := Wrap(ErrHigherStorageFileVersion, "version 9999")

	require.True(t, errors.Is(err, ErrHigherStorageFileVersion))
	require.False(t, errors.Is(err, ErrBytesParseFail))
}
