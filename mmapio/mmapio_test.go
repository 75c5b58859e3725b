package mmapio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateFileAndOpenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag.map")
	want := []byte("hello storage file")

	require.NoError(t, CreateFile(path, want))

	f, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, want, f.Bytes())
}

func TestOpenReadWrite_MutationPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag.val")
	require.NoError(t, CreateFile(path, []byte{0, 0, 0, 1}))

	rw, err := OpenReadWrite(path)
	require.NoError(t, err)

	rw.Bytes()[1] = 1
	require.NoError(t, rw.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	require.Equal(t, []byte{0, 1, 0, 1}, ro.Bytes())
}
