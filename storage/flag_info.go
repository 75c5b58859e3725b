package storage

import (
	"github.com/flagstorage/aconfig/errs"
	"github.com/flagstorage/aconfig/flags"
	"github.com/flagstorage/aconfig/format"
	"github.com/flagstorage/aconfig/internal/pool"
	"github.com/flagstorage/aconfig/section"
)

// BuildFlagInfoList serializes packages into a flag info list file for
// container: one packed byte per flag, bit 0 set iff the flag's
// permission is READ_WRITE.
func BuildFlagInfoList(container string, packages []flags.FlagPackage, opts ...BuildOption) ([]byte, error) {
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
	header := section.NewFlagInfoHeader(cfg.version, container, numFlags)
	header.BooleanFlagOffset = uint32(header.Size()) //nolint: gosec
	fileSize := int(header.BooleanFlagOffset) + int(numFlags)
	header.FileSize = uint32(fileSize) //nolint: gosec

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.ExtendOrGrow(fileSize)
	data := buf.Slice(0, fileSize)

	copy(data[:header.BooleanFlagOffset], header.Bytes())

	infoBytes := data[header.BooleanFlagOffset:]
	for i, slot := range slots {
		node := section.FlagInfoNode{IsReadWrite: parsed[i].Permission == format.PermissionReadWrite}
		infoBytes[slot] = node.Byte()
	}

	out := make([]byte, fileSize)
	copy(out, data)

	return out, nil
}

// FindBooleanFlagInfo reads the packed attribute node at flagIndex from a
// flag info list serialized by BuildFlagInfoList.
func FindBooleanFlagInfo(buf []byte, flagIndex uint32) (section.FlagInfoNode, error) {
	header, _, err := section.ParseFlagInfoHeader(buf)
	if err != nil {
		return section.FlagInfoNode{}, err
	}

	if err := section.CheckVersion(header.Version, MaxSupportedFileVersion); err != nil {
		return section.FlagInfoNode{}, err
	}

	offset := int(header.BooleanFlagOffset) + int(flagIndex)
	if flagIndex >= header.NumFlags || offset >= int(header.FileSize) || offset >= len(buf) {
		return section.FlagInfoNode{}, errs.Wrap(errs.ErrInvalidStorageFileOffset, "flag info index out of range")
	}

	return section.ParseFlagInfoNode(buf[offset]), nil
}
