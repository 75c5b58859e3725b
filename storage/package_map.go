package storage

import (
	"github.com/flagstorage/aconfig/codec"
	"github.com/flagstorage/aconfig/errs"
	"github.com/flagstorage/aconfig/flags"
	"github.com/flagstorage/aconfig/internal/bucket"
	"github.com/flagstorage/aconfig/internal/hash"
	"github.com/flagstorage/aconfig/internal/pool"
	"github.com/flagstorage/aconfig/section"
)

// BuildPackageMap serializes packages into a package map file for
// container. packages must already be deduplicated and ordered by
// first occurrence (flags.GroupByPackage does this); package_id is
// assigned as the index of each package in that order (spec §4.3).
func BuildPackageMap(container string, packages []flags.FlagPackage, opts ...BuildOption) ([]byte, error) {
	if container == "" {
		return nil, errs.ErrEmptyContainer
	}

	cfg, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}

	for _, pkg := range packages {
		if pkg.PackageName == "" {
			return nil, errs.ErrEmptyPackageName
		}
	}

	header := section.NewPackageMapHeader(cfg.version, container, uint32(len(packages))) //nolint: gosec
	numBuckets := bucket.Count(uint32(len(packages)))                                    //nolint: gosec

	bucketOffset := header.Size()
	bucketsSize := int(numBuckets) * codec.U32Size
	nodeOffset := bucketOffset + bucketsSize

	nodes := make([]section.PackageNode, len(packages))
	keys := make([][]byte, len(packages))
	offsets := make([]uint32, len(packages))

	cursor := nodeOffset
	for i, pkg := range packages {
		nodes[i] = section.PackageNode{
			PackageName:   pkg.PackageName,
			PackageID:     uint32(i), //nolint: gosec
			BooleanOffset: pkg.BooleanStartIndex,
		}
		keys[i] = hash.PackageKey(pkg.PackageName)
		offsets[i] = uint32(cursor) //nolint: gosec
		cursor += nodes[i].Size()
	}

	buckets, nextOffsets := threadChains(keys, offsets, numBuckets)
	for i := range nodes {
		nodes[i].NextOffset = nextOffsets[i]
	}

	header.BucketOffset = uint32(bucketOffset) //nolint: gosec
	header.NodeOffset = uint32(nodeOffset)      //nolint: gosec
	header.FileSize = uint32(cursor)            //nolint: gosec

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.ExtendOrGrow(cursor)
	data := buf.Slice(0, cursor)

	copy(data[:bucketOffset], header.Bytes())

	for i, b := range buckets {
		codec.WriteU32(data, bucketOffset+i*codec.U32Size, b)
	}

	offset := nodeOffset
	for _, n := range nodes {
		offset = n.WriteToSlice(data, offset)
	}

	out := make([]byte, cursor)
	copy(out, data)

	return out, nil
}

// FindPackage looks up name in a package map serialized by
// BuildPackageMap. found is false if no matching package exists.
func FindPackage(buf []byte, name string) (packageID uint32, booleanOffset uint32, found bool, err error) {
	header, _, err := section.ParsePackageMapHeader(buf)
	if err != nil {
		return 0, 0, false, err
	}

	if err := section.CheckVersion(header.Version, MaxSupportedFileVersion); err != nil {
		return 0, 0, false, err
	}

	numBuckets := bucket.Count(header.NumPackages)
	slot := bucket.Slot(hash.ID(hash.PackageKey(name)), numBuckets)

	bucketEntryOffset := int(header.BucketOffset) + int(slot)*codec.U32Size
	nodeOffset, err := codec.ReadU32(buf, bucketEntryOffset)
	if err != nil {
		return 0, 0, false, err
	}

	for nodeOffset != section.NoNext {
		if int(nodeOffset) >= len(buf) {
			return 0, 0, false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "package map node")
		}

		node, _, err := section.ParsePackageNode(buf, int(nodeOffset))
		if err != nil {
			return 0, 0, false, err
		}

		if node.PackageName == name {
			return node.PackageID, node.BooleanOffset, true, nil
		}

		nodeOffset = node.NextOffset
	}

	return 0, 0, false, nil
}
