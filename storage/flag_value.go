package storage

import (
	"github.com/flagstorage/aconfig/errs"
	"github.com/flagstorage/aconfig/flags"
	"github.com/flagstorage/aconfig/format"
	"github.com/flagstorage/aconfig/internal/pool"
	"github.com/flagstorage/aconfig/section"
)

// globalSlots resolves every package's boolean flags to their
// container-wide slot index (spec §3 invariant 2:
// package.boolean_offset + flag_id), recomputing the same sorted-name
// flag_id assignment BuildFlagMap uses so the two files always agree.
func globalSlots(packages []flags.FlagPackage) ([]uint32, []flags.ParsedFlag, error) {
	var slots []uint32
	var parsed []flags.ParsedFlag

	for _, pkg := range packages {
		ids, err := flags.AssignFlagIDs(pkg)
		if err != nil {
			return nil, nil, err
		}

		for _, pf := range pkg.BooleanFlags {
			slots = append(slots, pkg.BooleanStartIndex+uint32(ids[pf.Name]))
			parsed = append(parsed, pf)
		}
	}

	return slots, parsed, nil
}

// BuildFlagValueList serializes packages into a flag value list file for
// container: one byte per flag, 1 iff the flag's state is ENABLED.
func BuildFlagValueList(container string, packages []flags.FlagPackage, opts ...BuildOption) ([]byte, error) {
	if container == "" {
		return nil, errs.ErrEmptyContainer
	}

	cfg, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}

	slots, parsed, err := globalSlots(packages)
	if err != nil {
		return nil, err
	}

	numFlags := uint32(len(parsed)) //nolint: gosec
	header := section.NewFlagValueHeader(cfg.version, container, numFlags)
	header.BooleanValueOffset = uint32(header.Size()) //nolint: gosec
	fileSize := int(header.BooleanValueOffset) + int(numFlags)
	header.FileSize = uint32(fileSize) //nolint: gosec

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.ExtendOrGrow(fileSize)
	data := buf.Slice(0, fileSize)

	copy(data[:header.BooleanValueOffset], header.Bytes())

	valueBytes := data[header.BooleanValueOffset:]
	for i, slot := range slots {
		if parsed[i].State == format.StateEnabled {
			valueBytes[slot] = 1
		}
	}

	out := make([]byte, fileSize)
	copy(out, data)

	return out, nil
}

// FindBooleanFlagValue reads the boolean value at flagIndex from a flag
// value list serialized by BuildFlagValueList.
func FindBooleanFlagValue(buf []byte, flagIndex uint32) (bool, error) {
	header, _, err := section.ParseFlagValueHeader(buf)
	if err != nil {
		return false, err
	}

	if err := section.CheckVersion(header.Version, MaxSupportedFileVersion); err != nil {
		return false, err
	}

	offset := int(header.BooleanValueOffset) + int(flagIndex)
	if flagIndex >= header.NumFlags || offset >= int(header.FileSize) {
		return false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "flag value index out of range")
	}

	if offset >= len(buf) {
		return false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "flag value index out of range")
	}

	return buf[offset] == 1, nil
}
