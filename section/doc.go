// Package section defines the on-disk binary structures for the four
// storage file types: package map, flag map, flag value list, and flag
// info list.
//
// Every file begins with a header (version, container, file_type,
// file_size, a count field, and type-specific section offsets). Each
// header type has a Size method, a Bytes method, and a Parse*Header
// function that is its exact inverse and reads every field through the
// bounds-checked codec primitives. Unlike mebo's fixed 32-byte header, these headers are
// variable length because container is a length-prefixed string — header
// size must always be computed from the encoded container length, never
// hard-coded.
//
// Package map and flag map bodies add a bucket array (num_buckets ×
// Option<u32>, encoded as u32 with 0 meaning absent) followed by a node
// list. Each node type (PackageNode, FlagNode) has Size, WriteToSlice and
// a Parse*Node function; it has no Bytes method. Nodes are variable length
// (they embed a name string) so WriteToSlice returns the offset after the
// node rather than assuming a fixed stride.
package section
