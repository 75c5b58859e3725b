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

// flatFlag is one boolean flag bound to its owning package_id and its
// sorted-name flag_id, the unit flag map and flag value/info list
// building all iterate over.
type flatFlag struct {
	packageID uint32
	name      string
	flagID    uint16
}

// flattenFlags assigns sorted-name flag_ids within each package (spec
// §4.4, §8 invariant 8) and returns every flag in packages order, with
// package-id equal to each package's index in that slice (matching
// BuildPackageMap's assignment).
func flattenFlags(packages []flags.FlagPackage) ([]flatFlag, error) {
	var out []flatFlag
	for pkgIdx, pkg := range packages {
		ids, err := flags.AssignFlagIDs(pkg)
		if err != nil {
			return nil, err
		}

		for _, pf := range pkg.BooleanFlags {
			out = append(out, flatFlag{
				packageID: uint32(pkgIdx), //nolint: gosec
				name:      pf.Name,
				flagID:    ids[pf.Name],
			})
		}
	}

	return out, nil
}

// BuildFlagMap serializes packages into a flag map file for container.
func BuildFlagMap(container string, packages []flags.FlagPackage, opts ...BuildOption) ([]byte, error) {
	if container == "" {
		return nil, errs.ErrEmptyContainer
	}

	cfg, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}

	flatFlags, err := flattenFlags(packages)
	if err != nil {
		return nil, err
	}

	header := section.NewFlagMapHeader(cfg.version, container, uint32(len(flatFlags))) //nolint: gosec
	numBuckets := bucket.Count(uint32(len(flatFlags)))                                 //nolint: gosec

	bucketOffset := header.Size()
	bucketsSize := int(numBuckets) * codec.U32Size
	nodeOffset := bucketOffset + bucketsSize

	nodes := make([]section.FlagNode, len(flatFlags))
	keys := make([][]byte, len(flatFlags))
	offsets := make([]uint32, len(flatFlags))

	cursor := nodeOffset
	for i, f := range flatFlags {
		nodes[i] = section.FlagNode{
			PackageID: f.packageID,
			FlagName:  f.name,
			FlagType:  section.FlagTypeBoolean,
			FlagID:    f.flagID,
		}
		keys[i] = hash.FlagKey(f.packageID, f.name)
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

// FindFlag looks up (packageID, name) in a flag map serialized by
// BuildFlagMap.
func FindFlag(buf []byte, packageID uint32, name string) (flagType uint16, flagID uint16, found bool, err error) {
	header, _, err := section.ParseFlagMapHeader(buf)
	if err != nil {
		return 0, 0, false, err
	}

	if err := section.CheckVersion(header.Version, MaxSupportedFileVersion); err != nil {
		return 0, 0, false, err
	}

	numBuckets := bucket.Count(header.NumFlags)
	slot := bucket.Slot(hash.ID(hash.FlagKey(packageID, name)), numBuckets)

	bucketEntryOffset := int(header.BucketOffset) + int(slot)*codec.U32Size
	nodeOffset, err := codec.ReadU32(buf, bucketEntryOffset)
	if err != nil {
		return 0, 0, false, err
	}

	for nodeOffset != section.NoNext {
		if int(nodeOffset) >= len(buf) {
			return 0, 0, false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "flag map node")
		}

		node, _, err := section.ParseFlagNode(buf, int(nodeOffset))
		if err != nil {
			return 0, 0, false, err
		}

		if node.PackageID == packageID && node.FlagName == name {
			return node.FlagType, node.FlagID, true, nil
		}

		nodeOffset = node.NextOffset
	}

	return 0, 0, false, nil
}
