package section

import (
	"github.com/flagstorage/aconfig/codec"
	"github.com/flagstorage/aconfig/format"
)

// FlagMapHeader is the fixed-layout prefix of a flag map file.
type FlagMapHeader struct {
	Version      uint32
	Container    string
	FileSize     uint32
	NumFlags     uint32
	BucketOffset uint32
	NodeOffset   uint32
}

// NewFlagMapHeader creates a header for container at the given version.
func NewFlagMapHeader(version uint32, container string, numFlags uint32) FlagMapHeader {
	return FlagMapHeader{
		Version:  version,
		Container: container,
		NumFlags: numFlags,
	}
}

// Size returns the encoded byte length of h.
func (h FlagMapHeader) Size() int {
	return commonPrefixSize(h.Container) + 3*codec.U32Size
}

// Bytes serializes h.
func (h FlagMapHeader) Bytes() []byte {
	buf := make([]byte, h.Size())
	offset := writeCommonPrefix(buf, h.Version, h.Container, format.TypeFlagMap, h.FileSize)
	offset = codec.WriteU32(buf, offset, h.NumFlags)
	offset = codec.WriteU32(buf, offset, h.BucketOffset)
	codec.WriteU32(buf, offset, h.NodeOffset)

	return buf
}

// ParseFlagMapHeader parses a FlagMapHeader from the start of data.
func ParseFlagMapHeader(data []byte) (FlagMapHeader, int, error) {
	prefix, offset, err := parseCommonPrefix(data, format.TypeFlagMap)
	if err != nil {
		return FlagMapHeader{}, 0, err
	}

	numFlags, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagMapHeader{}, 0, err
	}
	offset += codec.U32Size

	bucketOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagMapHeader{}, 0, err
	}
	offset += codec.U32Size

	nodeOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagMapHeader{}, 0, err
	}
	offset += codec.U32Size

	return FlagMapHeader{
		Version:      prefix.version,
		Container:    prefix.container,
		FileSize:     prefix.fileSize,
		NumFlags:     numFlags,
		BucketOffset: bucketOffset,
		NodeOffset:   nodeOffset,
	}, offset, nil
}
