package disjoint

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.disjoint")
	defer teardown()
	//
	ds := New(6)
	ds.MustMerge(5, 1)
	ds.MustMerge(3, 6)
	ds.MustMerge(6, 1)
	sets := ds.Sets()
	expected := [][]int{{0}, {1, 3, 5, 6}, {2}, {4}}
	if len(sets) != len(expected) {
		t.Fatalf("expected %d groups, have %v", len(expected), sets)
	}
	for i, set := range expected {
		if len(sets[i]) != len(set) {
			t.Fatalf("expected group #%d to be %v, is %v", i, set, sets[i])
		}
		for j := range set {
			if sets[i][j] != set[j] {
				t.Errorf("expected group #%d to be %v, is %v", i, set, sets[i])
			}
		}
	}
	if s := ds.String(); s != "{[0] [1 3 5 6] [2] [4]}" {
		t.Errorf("unexpected string representation %q", s)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.disjoint")
	defer teardown()
	//
	a, b, c := New(4), New(4), New(5)
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("expected fresh sets of same size to have equal fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("expected sets of different size to have different fingerprints")
	}
	a.MustMerge(0, 1)
	a.MustMerge(1, 2)
	b.MustMerge(2, 0)
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("expected different partitions to have different fingerprints")
	}
	b.MustMerge(2, 1)
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("expected equal partitions %s and %s to have equal fingerprints", a, b)
	}
}
