package section

import (
	"github.com/flagstorage/aconfig/codec"
	"github.com/flagstorage/aconfig/errs"
	"github.com/flagstorage/aconfig/format"
)

// commonPrefixSize returns the encoded size of the version+container+
// file_type+file_size prefix shared by every header type.
func commonPrefixSize(container string) int {
	return codec.U32Size + codec.StringSize(container) + 1 + codec.U32Size
}

// writeCommonPrefix writes version, container, fileType and fileSize at
// offset 0 of buf and returns the next free offset.
func writeCommonPrefix(buf []byte, version uint32, container string, fileType format.FileType, fileSize uint32) int {
	offset := codec.WriteU32(buf, 0, version)
	offset = codec.WriteString(buf, offset, container)
	offset = codec.WriteU8(buf, offset, uint8(fileType))
	offset = codec.WriteU32(buf, offset, fileSize)

	return offset
}

// commonPrefix is the decoded form of the shared header prefix.
type commonPrefix struct {
	version  uint32
	container string
	fileType format.FileType
	fileSize uint32
}

// parseCommonPrefix parses the shared prefix starting at offset 0 of data
// and verifies fileType matches want, returning errs.ErrBadFileType
// otherwise.
func parseCommonPrefix(data []byte, want format.FileType) (commonPrefix, int, error) {
	version, err := codec.ReadU32(data, 0)
	if err != nil {
		return commonPrefix{}, 0, err
	}

	container, offset, err := codec.ReadString(data, codec.U32Size)
	if err != nil {
		return commonPrefix{}, 0, err
	}

	rawType, err := codec.ReadU8(data, offset)
	if err != nil {
		return commonPrefix{}, 0, err
	}
	offset++

	fileSize, err := codec.ReadU32(data, offset)
	if err != nil {
		return commonPrefix{}, 0, err
	}
	offset += codec.U32Size

	fileType := format.FileType(rawType)
	if fileType != want {
		return commonPrefix{}, 0, errs.Wrap(errs.ErrBadFileType, fileType.String())
	}

	return commonPrefix{
		version:   version,
		container: container,
		fileType:  fileType,
		fileSize:  fileSize,
	}, offset, nil
}

// CheckVersion returns errs.ErrHigherStorageFileVersion if version exceeds
// maxSupported.
func CheckVersion(version, maxSupported uint32) error {
	if version > maxSupported {
		return errs.Wrap(errs.ErrHigherStorageFileVersion, "file version exceeds maximum supported")
	}

	return nil
}
