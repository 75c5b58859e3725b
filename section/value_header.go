package section

import (
	"github.com/flagstorage/aconfig/codec"
	"github.com/flagstorage/aconfig/format"
)

// FlagValueHeader is the fixed-layout prefix of a flag value list file.
type FlagValueHeader struct {
	Version           uint32
	Container         string
	FileSize          uint32
	NumFlags          uint32
	BooleanValueOffset uint32
}

// NewFlagValueHeader creates a header for container at the given version.
func NewFlagValueHeader(version uint32, container string, numFlags uint32) FlagValueHeader {
	return FlagValueHeader{
		Version:   version,
		Container: container,
		NumFlags:  numFlags,
	}
}

// Size returns the encoded byte length of h.
func (h FlagValueHeader) Size() int {
	return commonPrefixSize(h.Container) + 2*codec.U32Size
}

// Bytes serializes h.
func (h FlagValueHeader) Bytes() []byte {
	buf := make([]byte, h.Size())
	offset := writeCommonPrefix(buf, h.Version, h.Container, format.TypeFlagVal, h.FileSize)
	offset = codec.WriteU32(buf, offset, h.NumFlags)
	codec.WriteU32(buf, offset, h.BooleanValueOffset)

	return buf
}

// ParseFlagValueHeader parses a FlagValueHeader from the start of data.
func ParseFlagValueHeader(data []byte) (FlagValueHeader, int, error) {
	prefix, offset, err := parseCommonPrefix(data, format.TypeFlagVal)
	if err != nil {
		return FlagValueHeader{}, 0, err
	}

	numFlags, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagValueHeader{}, 0, err
	}
	offset += codec.U32Size

	booleanValueOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagValueHeader{}, 0, err
	}
	offset += codec.U32Size

	return FlagValueHeader{
		Version:            prefix.version,
		Container:          prefix.container,
		FileSize:           prefix.fileSize,
		NumFlags:           numFlags,
		BooleanValueOffset: booleanValueOffset,
	}, offset, nil
}
