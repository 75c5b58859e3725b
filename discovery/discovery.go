// Package discovery locates the on-device flag declaration protobufs a
// build has produced: a fixed list of partition paths plus one path per
// currently active apex module (spec §6.3, supplemented from
// original_source's aconfig_device_paths/src/lib.rs — the distilled spec
// only summarizes this as "a fixed list of partition paths").
//
// This package only finds the parsed-flag protobuf paths the text-format
// parser would consume; it says nothing about where the storage files
// built from them live, since that is platform-image-defined (spec §6.3).
package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// protoLeaf is the file name every partition and apex module carries its
// flag declarations under.
const protoLeaf = "etc/aconfig_flags.pb"

// PartitionPaths is the fixed list of partition-relative leaf paths,
// grounded on aconfig_device_paths's partition_aconfig_flags_paths.txt
// fixture (4 entries).
var PartitionPaths = []string{
	filepath.Join("/system", protoLeaf),
	filepath.Join("/system_ext", protoLeaf),
	filepath.Join("/product", protoLeaf),
	filepath.Join("/vendor", protoLeaf),
}

// ProtoPaths returns every aconfig_flags.pb path that exists on this
// device: the partition paths that exist, plus one path per active apex
// module under /apex (entries containing "@" are inactive prior versions
// and are skipped).
func ProtoPaths() ([]string, error) {
	return protoPathsIn("/apex")
}

func protoPathsIn(apexRoot string) ([]string, error) {
	var result []string

	for _, p := range PartitionPaths {
		if _, err := os.Stat(p); err == nil {
			result = append(result, p)
		}
	}

	entries, err := os.ReadDir(apexRoot)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if strings.Contains(entry.Name(), "@") {
			continue
		}

		path := filepath.Join(apexRoot, entry.Name(), protoLeaf)
		if _, err := os.Stat(path); err == nil {
			result = append(result, path)
		}
	}

	return result, nil
}
