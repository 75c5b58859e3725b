package storage

import "github.com/flagstorage/aconfig/errs"

// containerFiles holds one container's mapped package map, flag map and
// flag value list bytes; the flag info list is optional (not every
// consumer needs permission metadata).
type containerFiles struct {
	packageMap []byte
	flagMap    []byte
	flagValue  []byte
	flagInfo   []byte // nil if not loaded
}

// ContainerSet aggregates several containers' storage files so a daemon
// or CLI consumer can answer a query without knowing which container a
// package lives in (spec §11 supplemented feature: real devices host
// system/vendor/product/system_ext plus one set of files per active apex
// module, all queried the same way).
type ContainerSet struct {
	containers map[string]containerFiles
}

// NewContainerSet creates an empty set.
func NewContainerSet() *ContainerSet {
	return &ContainerSet{containers: make(map[string]containerFiles)}
}

// AddContainer registers name's package map, flag map and flag value
// list bytes. flagInfo may be nil if that container's info list was not
// loaded.
func (s *ContainerSet) AddContainer(name string, packageMap, flagMap, flagValue, flagInfo []byte) {
	s.containers[name] = containerFiles{
		packageMap: packageMap,
		flagMap:    flagMap,
		flagValue:  flagValue,
		flagInfo:   flagInfo,
	}
}

// FindFlagValue resolves (container, packageName, flagName) across the
// registered containers, walking package map -> flag map -> flag value
// list the same way a single-container consumer would.
func (s *ContainerSet) FindFlagValue(container, packageName, flagName string) (bool, error) {
	files, ok := s.containers[container]
	if !ok {
		return false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "unknown container: "+container)
	}

	packageID, booleanOffset, found, err := FindPackage(files.packageMap, packageName)
	if err != nil {
		return false, err
	}
	if !found {
		return false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "unknown package: "+packageName)
	}

	_, flagID, found, err := FindFlag(files.flagMap, packageID, flagName)
	if err != nil {
		return false, err
	}
	if !found {
		return false, errs.Wrap(errs.ErrInvalidStorageFileOffset, "unknown flag: "+flagName)
	}

	return FindBooleanFlagValue(files.flagValue, booleanOffset+uint32(flagID))
}
