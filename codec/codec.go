// Package codec provides the bounds-checked little-endian primitives that
// every header, node, and payload in this repository is built from.
//
// Every Read* function returns errs.ErrBytesParseFail on a truncated
// buffer or malformed length prefix instead of panicking, per the
// no-panic-on-malformed-input rule. Every Write* function appends to a
// pre-sized slice at a known offset and returns the next free offset, the
// same "return the position after what I just wrote" convention the
// index-entry writers in this codebase use.
package codec

import (
	"unicode/utf8"

	"github.com/flagstorage/aconfig/endian"
	"github.com/flagstorage/aconfig/errs"
)

// engine is the byte order for every storage file in this repository. The
// format is little-endian by definition; see the endian package doc.
var engine = endian.GetLittleEndianEngine()

// U32Size is the encoded size in bytes of a u32 field.
const U32Size = 4

// ReadU8 reads a single byte at offset.
func ReadU8(data []byte, offset int) (uint8, error) {
	if offset < 0 || offset+1 > len(data) {
		return 0, errs.Wrap(errs.ErrBytesParseFail, "read u8: short buffer")
	}

	return data[offset], nil
}

// ReadU16 reads a little-endian uint16 at offset.
func ReadU16(data []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, errs.Wrap(errs.ErrBytesParseFail, "read u16: short buffer")
	}

	return engine.Uint16(data[offset : offset+2]), nil
}

// ReadU32 reads a little-endian uint32 at offset.
func ReadU32(data []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, errs.Wrap(errs.ErrBytesParseFail, "read u32: short buffer")
	}

	return engine.Uint32(data[offset : offset+4]), nil
}

// ReadU64 reads a little-endian uint64 at offset.
func ReadU64(data []byte, offset int) (uint64, error) {
	if offset < 0 || offset+8 > len(data) {
		return 0, errs.Wrap(errs.ErrBytesParseFail, "read u64: short buffer")
	}

	return engine.Uint64(data[offset : offset+8]), nil
}

// ReadString reads a u32-length-prefixed UTF-8 string starting at offset.
// It returns the decoded string and the offset of the first byte after it.
func ReadString(data []byte, offset int) (string, int, error) {
	n, err := ReadU32(data, offset)
	if err != nil {
		return "", offset, errs.Wrap(errs.ErrBytesParseFail, "read string: length prefix")
	}

	start := offset + U32Size
	end := start + int(n)
	if end < start || end > len(data) {
		return "", offset, errs.Wrap(errs.ErrBytesParseFail, "read string: short buffer")
	}

	b := data[start:end]
	if !utf8.Valid(b) {
		return "", offset, errs.Wrap(errs.ErrBytesParseFail, "read string: invalid utf-8")
	}

	return string(b), end, nil
}

// StringSize returns the encoded size in bytes of s, including its length
// prefix.
func StringSize(s string) int {
	return U32Size + len(s)
}

// WriteU8 writes v at offset and returns the next free offset.
func WriteU8(buf []byte, offset int, v uint8) int {
	buf[offset] = v
	return offset + 1
}

// WriteU16 writes v at offset in little-endian order and returns the next
// free offset.
func WriteU16(buf []byte, offset int, v uint16) int {
	engine.PutUint16(buf[offset:offset+2], v)
	return offset + 2
}

// WriteU32 writes v at offset in little-endian order and returns the next
// free offset.
func WriteU32(buf []byte, offset int, v uint32) int {
	engine.PutUint32(buf[offset:offset+4], v)
	return offset + 4
}

// WriteU64 writes v at offset in little-endian order and returns the next
// free offset.
func WriteU64(buf []byte, offset int, v uint64) int {
	engine.PutUint64(buf[offset:offset+8], v)
	return offset + 8
}

// WriteString writes s as a u32 length prefix followed by its bytes,
// starting at offset, and returns the next free offset.
func WriteString(buf []byte, offset int, s string) int {
	offset = WriteU32(buf, offset, uint32(len(s))) //nolint: gosec
	copy(buf[offset:offset+len(s)], s)

	return offset + len(s)
}
