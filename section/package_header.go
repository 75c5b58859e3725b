package section

import (
	"github.com/flagstorage/aconfig/codec"
	"github.com/flagstorage/aconfig/format"
)

// PackageMapHeader is the fixed-layout prefix of a package map file.
type PackageMapHeader struct {
	Version      uint32
	Container    string
	FileSize     uint32
	NumPackages  uint32
	BucketOffset uint32
	NodeOffset   uint32
}

// NewPackageMapHeader creates a header for container at the given
// version; FileSize, BucketOffset and NodeOffset are left zero for the
// builder to fill in once the body size is known.
func NewPackageMapHeader(version uint32, container string, numPackages uint32) PackageMapHeader {
	return PackageMapHeader{
		Version:     version,
		Container:   container,
		NumPackages: numPackages,
	}
}

// Size returns the encoded byte length of h.
func (h PackageMapHeader) Size() int {
	return commonPrefixSize(h.Container) + 3*codec.U32Size
}

// Bytes serializes h. Round-tripping through Bytes/ParsePackageMapHeader
// must reproduce h exactly.
func (h PackageMapHeader) Bytes() []byte {
	buf := make([]byte, h.Size())
	offset := writeCommonPrefix(buf, h.Version, h.Container, format.TypePackageMap, h.FileSize)
	offset = codec.WriteU32(buf, offset, h.NumPackages)
	offset = codec.WriteU32(buf, offset, h.BucketOffset)
	codec.WriteU32(buf, offset, h.NodeOffset)

	return buf
}

// ParsePackageMapHeader parses a PackageMapHeader from the start of data.
// It returns the header and the offset of the first byte after it.
func ParsePackageMapHeader(data []byte) (PackageMapHeader, int, error) {
	prefix, offset, err := parseCommonPrefix(data, format.TypePackageMap)
	if err != nil {
		return PackageMapHeader{}, 0, err
	}

	numPackages, err := codec.ReadU32(data, offset)
	if err != nil {
		return PackageMapHeader{}, 0, err
	}
	offset += codec.U32Size

	bucketOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return PackageMapHeader{}, 0, err
	}
	offset += codec.U32Size

	nodeOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return PackageMapHeader{}, 0, err
	}
	offset += codec.U32Size

	return PackageMapHeader{
		Version:      prefix.version,
		Container:    prefix.container,
		FileSize:     prefix.fileSize,
		NumPackages:  numPackages,
		BucketOffset: bucketOffset,
		NodeOffset:   nodeOffset,
	}, offset, nil
}
