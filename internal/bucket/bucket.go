// Package bucket computes the bucket-table size and slot for the package
// map and flag map hash tables.
//
// Bucket count is part of the file format, not an implementation detail:
// a reader recomputes nothing from the bucket array's length (it trusts
// header.num_packages/num_flags and bucket_offset/node_offset instead), but
// the writer's choice of table size still has to match what a compatible
// reader expects for bucket index i == H(key) mod num_buckets to line up
// with the chains a prior writer built. Version 1 uses a load factor of
// 1/2 (twice as many buckets as entries) rounded up to the next prime in a
// fixed table, matching the 3 packages -> 7 buckets and 8 flags -> 17
// buckets fixtures used throughout the test suite.
package bucket

// primes is a fixed table of primes, each roughly double the previous,
// used to size a hash table at load factor 1/2.
var primes = []uint32{
	7, 17, 37, 79, 163, 331, 673, 1361, 2729, 5471, 10949, 21911, 43853,
	87719, 175447, 350899, 701819, 1403641, 2807303, 5614657, 11229331,
	22458671, 44917381, 89834777, 179669557, 359339171, 718678369,
	1437356741,
}

// Count returns the number of buckets to allocate for numEntries nodes.
// It returns the smallest table size in the fixed prime table that keeps
// the load factor at or below 1/2, or the largest available size if
// numEntries exceeds what the table covers.
func Count(numEntries uint32) uint32 {
	needed := numEntries * 2
	for _, p := range primes {
		if p >= needed {
			return p
		}
	}

	return primes[len(primes)-1]
}

// Slot returns the bucket index for a key's hash given the table size.
func Slot(hash uint32, numBuckets uint32) uint32 {
	return hash % numBuckets
}
