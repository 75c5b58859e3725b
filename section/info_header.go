package section

import (
	"github.com/flagstorage/aconfig/codec"
	"github.com/flagstorage/aconfig/format"
)

// FlagInfoHeader is the fixed-layout prefix of a flag info list file.
//
// BooleanFlagOffset and FlagValueHeader.BooleanValueOffset name the same
// arithmetic (packages[id].BooleanOffset + flag_id) under different names
// for historical reasons; keep both names rather than unifying them, so a
// reader matching field names against the file layout documentation can
// still find them.
type FlagInfoHeader struct {
	Version           uint32
	Container         string
	FileSize          uint32
	NumFlags          uint32
	BooleanFlagOffset uint32
}

// NewFlagInfoHeader creates a header for container at the given version.
func NewFlagInfoHeader(version uint32, container string, numFlags uint32) FlagInfoHeader {
	return FlagInfoHeader{
		Version:   version,
		Container: container,
		NumFlags:  numFlags,
	}
}

// Size returns the encoded byte length of h.
func (h FlagInfoHeader) Size() int {
	return commonPrefixSize(h.Container) + 2*codec.U32Size
}

// Bytes serializes h.
func (h FlagInfoHeader) Bytes() []byte {
	buf := make([]byte, h.Size())
	offset := writeCommonPrefix(buf, h.Version, h.Container, format.TypeFlagInfo, h.FileSize)
	offset = codec.WriteU32(buf, offset, h.NumFlags)
	codec.WriteU32(buf, offset, h.BooleanFlagOffset)

	return buf
}

// ParseFlagInfoHeader parses a FlagInfoHeader from the start of data.
func ParseFlagInfoHeader(data []byte) (FlagInfoHeader, int, error) {
	prefix, offset, err := parseCommonPrefix(data, format.TypeFlagInfo)
	if err != nil {
		return FlagInfoHeader{}, 0, err
	}

	numFlags, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagInfoHeader{}, 0, err
	}
	offset += codec.U32Size

	booleanFlagOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagInfoHeader{}, 0, err
	}
	offset += codec.U32Size

	return FlagInfoHeader{
		Version:           prefix.version,
		Container:         prefix.container,
		FileSize:          prefix.fileSize,
		NumFlags:          numFlags,
		BooleanFlagOffset: booleanFlagOffset,
	}, offset, nil
}
