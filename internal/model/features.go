package model

import "sort"

// FeatureSet is a mapping from feature name to an enabled/disabled flag.
// Transformers consult it to decide which optional transform steps to apply.
//
// A FeatureSet is owned by the processor that created it, but callers may
// pass their own set to a processing call. The passed set then replaces the
// default in full for that call; the two are never merged.
//
// FeatureSet is not safe for concurrent mutation. Configure it before
// handing it to a processor; concurrent reads are fine.
type FeatureSet struct {
	flags map[string]bool
}

// NewFeatureSet creates an empty FeatureSet.
func NewFeatureSet() *FeatureSet {
	return &FeatureSet{flags: make(map[string]bool)}
}

// NewFeatureSetFrom creates a FeatureSet pre-populated from the given map.
// The map is copied; later changes to it do not affect the FeatureSet.
func NewFeatureSetFrom(flags map[string]bool) *FeatureSet {
	fs := NewFeatureSet()
	for name, enabled := range flags {
		fs.flags[name] = enabled
	}
	return fs
}

// Enable turns the named feature on.
func (fs *FeatureSet) Enable(name string) {
	fs.flags[name] = true
}

// Disable turns the named feature off.
func (fs *FeatureSet) Disable(name string) {
	fs.flags[name] = false
}

// Enabled reports whether the named feature is enabled.
// Unknown features are disabled.
func (fs *FeatureSet) Enabled(name string) bool {
	if fs == nil {
		return false
	}
	return fs.flags[name]
}

// Clone returns an independent copy of the FeatureSet.
func (fs *FeatureSet) Clone() *FeatureSet {
	return NewFeatureSetFrom(fs.flags)
}

// Names returns the names of all configured features in sorted order,
// regardless of whether they are enabled or disabled.
func (fs *FeatureSet) Names() []string {
	names := make([]string, 0, len(fs.flags))
	for name := range fs.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of configured features.
func (fs *FeatureSet) Len() int {
	return len(fs.flags)
}
