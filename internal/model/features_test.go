package model

import (
	"reflect"
	"testing"
)

// TestFeatureSetEnableDisable tests toggling feature flags.
func TestFeatureSetEnableDisable(t *testing.T) {
	t.Parallel()

	fs := NewFeatureSet()

	if fs.Enabled("word_count") {
		t.Error("expected unknown feature to be disabled")
	}

	fs.Enable("word_count")
	if !fs.Enabled("word_count") {
		t.Error("expected word_count to be enabled")
	}

	fs.Disable("word_count")
	if fs.Enabled("word_count") {
		t.Error("expected word_count to be disabled")
	}
}

// TestFeatureSetNilReceiver tests that a nil FeatureSet reports all
// features as disabled instead of panicking.
func TestFeatureSetNilReceiver(t *testing.T) {
	t.Parallel()

	var fs *FeatureSet
	if fs.Enabled("uppercase") {
		t.Error("expected nil FeatureSet to report features as disabled")
	}
}

// TestFeatureSetClone tests that clones are independent.
func TestFeatureSetClone(t *testing.T) {
	t.Parallel()

	original := NewFeatureSet()
	original.Enable("statistics")

	clone := original.Clone()
	clone.Disable("statistics")
	clone.Enable("uppercase")

	if !original.Enabled("statistics") {
		t.Error("mutating the clone changed the original")
	}
	if original.Enabled("uppercase") {
		t.Error("mutating the clone changed the original")
	}
	if clone.Enabled("statistics") {
		t.Error("expected statistics to be disabled in clone")
	}
}

// TestFeatureSetFrom tests construction from a plain map.
func TestFeatureSetFrom(t *testing.T) {
	t.Parallel()

	flags := map[string]bool{"uppercase": true, "word_count": false}
	fs := NewFeatureSetFrom(flags)

	// The source map must be copied, not aliased.
	flags["uppercase"] = false

	if !fs.Enabled("uppercase") {
		t.Error("expected uppercase to stay enabled after source map mutation")
	}
	if fs.Enabled("word_count") {
		t.Error("expected word_count to be disabled")
	}
}

// TestFeatureSetNames tests sorted name listing.
func TestFeatureSetNames(t *testing.T) {
	t.Parallel()

	fs := NewFeatureSet()
	fs.Enable("word_count")
	fs.Disable("uppercase")
	fs.Enable("statistics")

	got := fs.Names()
	expected := []string{"statistics", "uppercase", "word_count"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Names() = %v, expected %v", got, expected)
	}
	if fs.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", fs.Len())
	}
}
