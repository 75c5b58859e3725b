package section

import (
	"github.com/flagstorage/aconfig/codec"
)

// NoNext is the next_offset sentinel meaning "end of chain"; 0 is never a
// valid node offset because the header always occupies the file prefix.
const NoNext uint32 = 0

// PackageNode is one entry in a package map's bucket chain.
type PackageNode struct {
	PackageName   string
	PackageID     uint32
	BooleanOffset uint32
	NextOffset    uint32
}

// Size returns the encoded byte length of n.
func (n PackageNode) Size() int {
	return codec.StringSize(n.PackageName) + 3*codec.U32Size
}

// WriteToSlice writes n into buf at offset and returns the offset of the
// first byte after it.
func (n PackageNode) WriteToSlice(buf []byte, offset int) int {
	offset = codec.WriteString(buf, offset, n.PackageName)
	offset = codec.WriteU32(buf, offset, n.PackageID)
	offset = codec.WriteU32(buf, offset, n.BooleanOffset)
	offset = codec.WriteU32(buf, offset, n.NextOffset)

	return offset
}

// ParsePackageNode parses a PackageNode starting at offset in data. It
// returns the node and the offset of the first byte after it.
func ParsePackageNode(data []byte, offset int) (PackageNode, int, error) {
	name, offset, err := codec.ReadString(data, offset)
	if err != nil {
		return PackageNode{}, 0, err
	}

	packageID, err := codec.ReadU32(data, offset)
	if err != nil {
		return PackageNode{}, 0, err
	}
	offset += codec.U32Size

	booleanOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return PackageNode{}, 0, err
	}
	offset += codec.U32Size

	nextOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return PackageNode{}, 0, err
	}
	offset += codec.U32Size

	return PackageNode{
		PackageName:   name,
		PackageID:     packageID,
		BooleanOffset: booleanOffset,
		NextOffset:    nextOffset,
	}, offset, nil
}
