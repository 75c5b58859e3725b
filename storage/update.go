package storage

import (
	"github.com/flagstorage/aconfig/errs"
	"github.com/flagstorage/aconfig/section"
)

// UpdateBooleanFlagValue flips the byte for flagIndex in buf to 1 if
// value is true, 0 otherwise, and returns the absolute offset written.
// It is the only mutating operation in this package: a single byte
// store, no other byte in buf is touched (spec §4.7).
//
// buf is expected to be a shared-writable mapping (mmapio.OpenReadWrite);
// the caller is responsible for ensuring it is the sole writer (spec §5).
func UpdateBooleanFlagValue(buf []byte, flagIndex uint32, value bool) (int, error) {
	header, _, err := section.ParseFlagValueHeader(buf)
	if err != nil {
		return 0, err
	}

	if err := section.CheckVersion(header.Version, MaxSupportedFileVersion); err != nil {
		return 0, err
	}

	offset := int(header.BooleanValueOffset) + int(flagIndex)
	if flagIndex >= header.NumFlags || offset >= int(header.FileSize) || offset >= len(buf) {
		return 0, errs.Wrap(errs.ErrInvalidStorageFileOffset, "update: flag index out of range")
	}

	if value {
		buf[offset] = 1
	} else {
		buf[offset] = 0
	}

	return offset, nil
}
