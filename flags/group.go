package flags

import (
	"github.com/flagstorage/aconfig/internal/dedup"
)

// GroupByPackage groups a flat ParsedFlag stream by package name,
// preserving first-occurrence order per spec §4.3 step 1, and assigns each
// package's BooleanStartIndex as the cumulative sum of prior packages'
// flag counts, in that same assignment order (spec §4.3 step 2).
//
// Only flags belonging to container are included; flags declared for other
// containers are silently skipped, since each container owns a disjoint
// set of storage files.
func GroupByPackage(parsedFlags []ParsedFlag, container string) []FlagPackage {
	tracker := dedup.NewPackageTracker()
	var packages []FlagPackage

	for _, pf := range parsedFlags {
		if pf.Container != container {
			continue
		}

		pos, isNew := tracker.Offer(pf.Package)
		if isNew {
			packages = append(packages, FlagPackage{PackageName: pf.Package})
		}

		packages[pos].BooleanFlags = append(packages[pos].BooleanFlags, pf)
	}

	var cumulative uint32
	for i := range packages {
		packages[i].BooleanStartIndex = cumulative
		cumulative += uint32(len(packages[i].BooleanFlags))
	}

	return packages
}

// FilterContainer drops DISABLED+READ_ONLY flags from packages belonging
// to a container that inlines them at codegen time (system, vendor,
// product), per spec §3 invariant 3. It returns a new slice; the input is
// left untouched. BooleanStartIndex is recomputed after filtering so it
// still reflects the cumulative count of flags that remain.
func FilterContainer(container string, packages []FlagPackage) []FlagPackage {
	if !inlinesDisabledReadOnly(container) {
		out := make([]FlagPackage, len(packages))
		copy(out, packages)

		return out
	}

	out := make([]FlagPackage, 0, len(packages))
	var cumulative uint32
	for _, pkg := range packages {
		kept := make([]ParsedFlag, 0, len(pkg.BooleanFlags))
		for _, pf := range pkg.BooleanFlags {
			if !excludedFromRuntime(pf) {
				kept = append(kept, pf)
			}
		}

		out = append(out, FlagPackage{
			PackageName:       pkg.PackageName,
			BooleanFlags:      kept,
			BooleanStartIndex: cumulative,
		})
		cumulative += uint32(len(kept))
	}

	return out
}
