// Package aconfig provides convenient top-level wrappers around the
// storage package for the common case of building and querying one
// container's flag files.
//
// Building a container's files from a parsed-flag stream:
//
//	parsed := []flags.ParsedFlag{ ... }
//	grouped := flags.GroupByPackage(parsed, "system")
//	grouped = flags.FilterContainer("system", grouped)
//
//	packageMap, _ := aconfig.BuildContainer("system", grouped)
//	enabled, _ := storage.FindBooleanFlagValue(packageMap.FlagValue, 0)
//
// For advanced usage — custom BuildOption values, multi-container
// aggregation, in-place updates — use the storage package directly.
package aconfig

import (
	"github.com/flagstorage/aconfig/flags"
	"github.com/flagstorage/aconfig/storage"
)

// ContainerFiles bundles one container's four built storage files.
// FlagInfo is nil unless the caller asked for it via WithFlagInfo.
type ContainerFiles struct {
	PackageMap []byte
	FlagMap    []byte
	FlagValue  []byte
	FlagInfo   []byte
}

// buildContainerConfig controls which optional files BuildContainer
// produces.
type buildContainerConfig struct {
	includeInfo bool
	opts        []storage.BuildOption
}

// ContainerOption configures BuildContainer.
type ContainerOption func(*buildContainerConfig)

// WithFlagInfo requests that BuildContainer also build the flag info
// list.
func WithFlagInfo() ContainerOption {
	return func(cfg *buildContainerConfig) {
		cfg.includeInfo = true
	}
}

// WithBuildOptions passes through options to every underlying storage
// Build* call (e.g. storage.WithVersion).
func WithBuildOptions(opts ...storage.BuildOption) ContainerOption {
	return func(cfg *buildContainerConfig) {
		cfg.opts = opts
	}
}

// BuildContainer builds a container's package map, flag map, and flag
// value list (and, if requested, its flag info list) from an
// already-grouped and already-filtered package set.
func BuildContainer(container string, packages []flags.FlagPackage, opts ...ContainerOption) (ContainerFiles, error) {
	cfg := &buildContainerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	packageMap, err := storage.BuildPackageMap(container, packages, cfg.opts...)
	if err != nil {
		return ContainerFiles{}, err
	}

	flagMap, err := storage.BuildFlagMap(container, packages, cfg.opts...)
	if err != nil {
		return ContainerFiles{}, err
	}

	flagValue, err := storage.BuildFlagValueList(container, packages, cfg.opts...)
	if err != nil {
		return ContainerFiles{}, err
	}

	var flagInfo []byte
	if cfg.includeInfo {
		flagInfo, err = storage.BuildFlagInfoList(container, packages, cfg.opts...)
		if err != nil {
			return ContainerFiles{}, err
		}
	}

	return ContainerFiles{
		PackageMap: packageMap,
		FlagMap:    flagMap,
		FlagValue:  flagValue,
		FlagInfo:   flagInfo,
	}, nil
}

// FindFlagValue resolves a (packageName, flagName) pair against a single
// container's built files.
func FindFlagValue(files ContainerFiles, packageName, flagName string) (bool, error) {
	packageID, booleanOffset, found, err := storage.FindPackage(files.PackageMap, packageName)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	_, flagID, found, err := storage.FindFlag(files.FlagMap, packageID, flagName)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	return storage.FindBooleanFlagValue(files.FlagValue, booleanOffset+uint32(flagID))
}
