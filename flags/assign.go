package flags

import (
	"sort"

	"github.com/flagstorage/aconfig/internal/dedup"
)

// AssignFlagIDs assigns each flag in pkg a dense id equal to the rank of
// its name in ascending byte order among that package's flags (spec §4.4),
// independent of the order the flags appear in BooleanFlags. It returns an
// error if the package contains two flags with the same name.
func AssignFlagIDs(pkg FlagPackage) (map[string]uint16, error) {
	names := dedup.NewFlagNameSet()
	sorted := make([]string, 0, len(pkg.BooleanFlags))
	for _, pf := range pkg.BooleanFlags {
		if err := names.Add(pf.Name); err != nil {
			return nil, err
		}
		sorted = append(sorted, pf.Name)
	}

	sort.Strings(sorted)

	ids := make(map[string]uint16, len(sorted))
	for id, name := range sorted {
		ids[name] = uint16(id) //nolint: gosec
	}

	return ids, nil
}
