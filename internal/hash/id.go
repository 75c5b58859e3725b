// Package hash computes the deterministic bucket-placement hash used by
// the package map and flag map file formats.
//
// The hash function is part of the file format (spec: "Hash choice"):
// changing it without bumping the header version breaks every existing
// reader, since buckets are placed by H(key) mod num_buckets. Version 1
// pins xxHash64, truncated to its low 32 bits.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the 32-bit bucket-placement hash of data.
func ID(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

// PackageKey builds the hash input for a package map lookup: the raw
// package name bytes.
func PackageKey(packageName string) []byte {
	return []byte(packageName)
}

// FlagKey builds the hash input for a flag map lookup: the little-endian
// package id followed by the flag name bytes, per spec §4.4.
func FlagKey(packageID uint32, flagName string) []byte {
	key := make([]byte, 4+len(flagName))
	key[0] = byte(packageID)
	key[1] = byte(packageID >> 8)
	key[2] = byte(packageID >> 16)
	key[3] = byte(packageID >> 24)
	copy(key[4:], flagName)

	return key
}
