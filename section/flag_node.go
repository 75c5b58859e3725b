package section

import (
	"github.com/flagstorage/aconfig/codec"
)

// FlagTypeBoolean is the only flag_type value this implementation emits;
// other types are reserved by the format but not exercised here.
const FlagTypeBoolean uint16 = 1

// FlagNode is one entry in a flag map's bucket chain.
type FlagNode struct {
	PackageID  uint32
	FlagName   string
	FlagType   uint16
	FlagID     uint16
	NextOffset uint32
}

// Size returns the encoded byte length of n.
func (n FlagNode) Size() int {
	return codec.U32Size + codec.StringSize(n.FlagName) + 2 + 2 + codec.U32Size
}

// WriteToSlice writes n into buf at offset and returns the offset of the
// first byte after it.
func (n FlagNode) WriteToSlice(buf []byte, offset int) int {
	offset = codec.WriteU32(buf, offset, n.PackageID)
	offset = codec.WriteString(buf, offset, n.FlagName)
	offset = codec.WriteU16(buf, offset, n.FlagType)
	offset = codec.WriteU16(buf, offset, n.FlagID)
	offset = codec.WriteU32(buf, offset, n.NextOffset)

	return offset
}

// ParseFlagNode parses a FlagNode starting at offset in data. It returns
// the node and the offset of the first byte after it.
func ParseFlagNode(data []byte, offset int) (FlagNode, int, error) {
	packageID, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagNode{}, 0, err
	}
	offset += codec.U32Size

	name, offset, err := codec.ReadString(data, offset)
	if err != nil {
		return FlagNode{}, 0, err
	}

	flagType, err := codec.ReadU16(data, offset)
	if err != nil {
		return FlagNode{}, 0, err
	}
	offset += 2

	flagID, err := codec.ReadU16(data, offset)
	if err != nil {
		return FlagNode{}, 0, err
	}
	offset += 2

	nextOffset, err := codec.ReadU32(data, offset)
	if err != nil {
		return FlagNode{}, 0, err
	}
	offset += codec.U32Size

	return FlagNode{
		PackageID:  packageID,
		FlagName:   name,
		FlagType:   flagType,
		FlagID:     flagID,
		NextOffset: nextOffset,
	}, offset, nil
}
