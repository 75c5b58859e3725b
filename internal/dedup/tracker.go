// Package dedup tracks first-occurrence ordering while grouping parsed
// flags into packages, and flags duplicate names the grouper cannot
// silently resolve.
//
// This replaces the teacher's hash-collision tracker: mebo's map-keyed
// blob format needs a tracker because two different metric names can hash
// to the same 64-bit id, and the only way to tell them apart later is to
// keep the name around. This file format never has that problem — a
// package-map or flag-map lookup always walks its bucket chain comparing
// the full key bytes, so a hash collision between two different names can
// never return the wrong node. What this format does still need tracked is
// first-occurrence order (spec: "deduplicate, preserving first
// occurrence") and outright duplicate names within one package, which is
// a builder input error rather than a hash collision.
package dedup

import "github.com/flagstorage/aconfig/errs"

// PackageTracker records the order in which distinct package names are
// first seen, discarding later repeats of an already-seen name.
type PackageTracker struct {
	index map[string]int
	order []string
}

// NewPackageTracker creates an empty tracker.
func NewPackageTracker() *PackageTracker {
	return &PackageTracker{index: make(map[string]int)}
}

// Offer records name if it has not been seen before. It returns the
// package's position in first-occurrence order and whether this call was
// the first time name was offered.
func (t *PackageTracker) Offer(name string) (position int, isNew bool) {
	if pos, ok := t.index[name]; ok {
		return pos, false
	}

	pos := len(t.order)
	t.index[name] = pos
	t.order = append(t.order, name)

	return pos, true
}

// Order returns package names in first-occurrence order.
func (t *PackageTracker) Order() []string {
	return t.order
}

// Count returns the number of distinct names tracked so far.
func (t *PackageTracker) Count() int {
	return len(t.order)
}

// FlagNameSet rejects a flag name that already appears within the same
// package; a package's flags must have pairwise-distinct names so that
// sorted-name flag-id assignment is well defined.
type FlagNameSet struct {
	seen map[string]struct{}
}

// NewFlagNameSet creates an empty set.
func NewFlagNameSet() *FlagNameSet {
	return &FlagNameSet{seen: make(map[string]struct{})}
}

// Add records name, returning an error if it was already present.
func (s *FlagNameSet) Add(name string) error {
	if _, ok := s.seen[name]; ok {
		return errs.Wrap(errs.ErrDuplicateFlagName, name)
	}

	s.seen[name] = struct{}{}

	return nil
}
