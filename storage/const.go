package storage

// MaxSupportedFileVersion is the highest header version this library
// accepts on read and writes by default. Bumping it is a format decision
// (see internal/hash and internal/bucket doc comments): it must happen in
// lockstep with any change to the hash function or bucket-sizing rule.
const MaxSupportedFileVersion uint32 = 1
