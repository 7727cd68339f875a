package disjoint

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Sets returns the groups of the partition. Members of a group are sorted,
// groups are ordered by their smallest member. Sets does not compress paths.
func (ds *DisjointSet) Sets() [][]int {
	byRoot := treemap.NewWithIntComparator()
	for u := range ds.parent {
		r := ds.root(u)
		if members, found := byRoot.Get(r); found {
			byRoot.Put(r, append(members.([]int), u))
		} else {
			byRoot.Put(r, []int{u})
		}
	}
	ordered := treeset.NewWith(groupComparator)
	ordered.Add(byRoot.Values()...)
	sets := make([][]int, 0, ordered.Size())
	for _, g := range ordered.Values() {
		sets = append(sets, g.([]int))
	}
	return sets
}

// Groups are never empty and are disjoint, so their first elements differ.
func groupComparator(a, b interface{}) int {
	return utils.IntComparator(a.([]int)[0], b.([]int)[0])
}

// canonical is the hashable form of a partition.
type canonical struct {
	Size int
	Sets [][]int
}

// Fingerprint returns a hash string of the partition. Two disjoint sets have
// equal fingerprints iff they have the same universe and the same groups,
// regardless of how the groups have been merged and which elements serve as roots.
func (ds *DisjointSet) Fingerprint() string {
	h, err := structhash.Hash(canonical{Size: ds.Len(), Sets: ds.Sets()}, 1)
	if err != nil { // structhash currently never fails
		panic(err)
	}
	return h
}

// String formats a disjoint set as a human-readable string, e.g.
//
//     {[0 1 2] [3] [4 5]}
//
func (ds *DisjointSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, set := range ds.Sets() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", set)
	}
	b.WriteString("}")
	return b.String()
}
