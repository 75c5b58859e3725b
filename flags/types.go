// Package flags defines the input contract the storage builders consume:
// a stream of ParsedFlag values (produced by the text-protobuf parser,
// which is out of scope here) grouped into per-container FlagPackage
// sequences.
package flags

import "github.com/flagstorage/aconfig/format"

// ParsedFlag is a single flag declaration as produced by the (external)
// text-protobuf parser.
type ParsedFlag struct {
	Package    string
	Name       string
	Container  string
	State      format.State
	Permission format.Permission
	Namespace  string
	IsExported bool
}

// FlagPackage groups the boolean ParsedFlags belonging to one package
// within one container, in the order the grouper first saw them.
//
// BooleanStartIndex is the offset of this package's first flag in the
// container-wide dense boolean array (spec §3 invariant 2).
type FlagPackage struct {
	PackageName       string
	BooleanFlags      []ParsedFlag
	BooleanStartIndex uint32
}

// excludedFromRuntime reports whether pf must be dropped from the
// package/flag/value/info files for containers that inline disabled
// read-only flags at codegen time (spec §3 invariant 3).
func excludedFromRuntime(pf ParsedFlag) bool {
	return pf.State == format.StateDisabled && pf.Permission == format.PermissionReadOnly
}

// inlinesDisabledReadOnly reports whether container bakes DISABLED+READ_ONLY
// flags in at codegen time instead of giving them a runtime slot.
func inlinesDisabledReadOnly(container string) bool {
	switch container {
	case "system", "vendor", "product":
		return true
	default:
		return false
	}
}
