package storage

import (
	"github.com/flagstorage/aconfig/internal/bucket"
	"github.com/flagstorage/aconfig/internal/hash"
	"github.com/flagstorage/aconfig/section"
)

// threadChains places len(keys) items into a bucket table of numBuckets
// slots and threads each bucket's chain in insertion order (spec §4.2:
// "chain insertion order is the order nodes are written to the file").
// offsets[i] is the absolute file offset of item i's serialized node.
//
// It returns the bucket table (section.NoNext/0 for an empty bucket) and,
// for each item, the next_offset to store in that item's node.
func threadChains(keys [][]byte, offsets []uint32, numBuckets uint32) (buckets []uint32, nextOffsets []uint32) {
	buckets = make([]uint32, numBuckets)
	nextOffsets = make([]uint32, len(keys))

	tail := make([]int, numBuckets)
	for i := range tail {
		tail[i] = -1
	}

	for i, key := range keys {
		slot := bucket.Slot(hash.ID(key), numBuckets)
		nextOffsets[i] = section.NoNext

		if tail[slot] == -1 {
			buckets[slot] = offsets[i]
		} else {
			nextOffsets[tail[slot]] = offsets[i]
		}

		tail[slot] = i
	}

	return buckets, nextOffsets
}
