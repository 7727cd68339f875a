/*
Package disjoint implements a disjoint-set (union-find) structure over a
fixed universe of integer elements 0…n.

Elements start out in singleton groups. Groups may be merged, but never
split. Each group is identified by one of its members, the root. Merging
uses union by rank to keep the trees of parent links shallow.

Find does not compress paths by default, i.e. it is a pure traversal which
leaves the parent links untouched. Path compression may be switched on per
structure with option PathCompression, or globally with configuration key
"disjoint.path-compression". Compression never changes which elements are
equivalent, only the cost of later traversals.

A DisjointSet is not safe for concurrent use. As Find may rewrite parent
links, callers sharing a structure must guard every call, including Find,
with one exclusive lock.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package disjoint

import (
	"math"

	"github.com/npillmayer/partition"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'partition.disjoint'.
func tracer() tracing.Trace {
	return tracing.Select("partition.disjoint")
}

// DisjointSet is a partition of the universe 0…n into disjoint groups.
// Create one with
//
//     ds := disjoint.New(5)          // elements 0, 1, …, 5
//     ds.Merge(0, 1)                 // 0 and 1 are in the same group now
//     r, _ := ds.Find(1)             // r is the root of the group {0, 1}
//
type DisjointSet struct {
	parent   []int // parent link per element; roots point to themselves
	rank     []int // only valid for roots
	groups   int   // number of roots
	compress bool  // path compression during Find
}

// New creates a disjoint set for elements 0…n (inclusive), every element in
// a group of its own. n must not be negative and must be less than math.MaxInt;
// New will panic otherwise.
func New(n int, opts ...Option) *DisjointSet {
	if n < 0 || n == math.MaxInt {
		panic(partition.Errorf(partition.OutOfRange, "new", "universe bound %d not in 0…%d", n, math.MaxInt-1))
	}
	ds := &DisjointSet{
		parent:   make([]int, n+1),
		rank:     make([]int, n+1),
		groups:   n + 1,
		compress: gconf.GetBool("disjoint.path-compression"),
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.rank[i] = 1
	}
	for _, opt := range opts {
		opt(ds)
	}
	tracer().Debugf("new disjoint set of %d elements, compression=%v", n+1, ds.compress)
	return ds
}

// Len returns the number of elements of the universe, i.e. n+1.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the current number of groups.
func (ds *DisjointSet) Count() int {
	return ds.groups
}

// Find returns the root of the group containing u.
// An error of kind partition.OutOfRange is returned if u is not in 0…n.
func (ds *DisjointSet) Find(u int) (int, error) {
	if err := ds.check("find", u); err != nil {
		return u, err
	}
	r := ds.root(u)
	if ds.compress {
		ds.compressPath(u, r)
	}
	return r, nil
}

// MustFind is like Find, but panics if u is out of range.
func (ds *DisjointSet) MustFind(u int) int {
	r, err := ds.Find(u)
	if err != nil {
		panic(err)
	}
	return r
}

// Merge merges the groups of u and v. It returns true if two distinct groups
// have been merged, and false if u and v already have been in the same group.
//
// The root with the smaller rank is attached to the root with the larger rank.
// For equal ranks the root of u is attached to the root of v, and v's root gains
// one rank.
//
// If either argument is out of range, an error of kind partition.OutOfRange is
// returned and the structure, including its parent links, remains unchanged.
// Both arguments are checked before either one is resolved.
func (ds *DisjointSet) Merge(u, v int) (bool, error) {
	if err := ds.checkPair("merge", u, v); err != nil {
		return false, err
	}
	ru, rv := ds.MustFind(u), ds.MustFind(v)
	if ru == rv {
		return false, nil
	}
	if ds.rank[ru] > ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[ru] = rv
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[rv]++
	}
	ds.groups--
	tracer().Debugf("merge(%d,%d): %d → %d, rank=%d, groups=%d", u, v, ru, rv, ds.rank[rv], ds.groups)
	return true, nil
}

// MustMerge is like Merge, but panics if u or v is out of range.
func (ds *DisjointSet) MustMerge(u, v int) bool {
	merged, err := ds.Merge(u, v)
	if err != nil {
		panic(err)
	}
	return merged
}

// Same is a predicate: are u and v in the same group?
func (ds *DisjointSet) Same(u, v int) (bool, error) {
	if err := ds.checkPair("same", u, v); err != nil {
		return false, err
	}
	return ds.MustFind(u) == ds.MustFind(v), nil
}

// Rank returns the rank of the root of u's group.
func (ds *DisjointSet) Rank(u int) (int, error) {
	r, err := ds.Find(u)
	if err != nil {
		return 0, err
	}
	return ds.rank[r], nil
}

// Dump traces the internal tables (debug level only).
func (ds *DisjointSet) Dump() {
	if tracer().GetTraceLevel() < tracing.LevelDebug {
		return
	}
	tracing.With(tracer()).Dump("parent", ds.parent)
	tracing.With(tracer()).Dump("rank", ds.rank)
}

// --- Internals -------------------------------------------------------------

func (ds *DisjointSet) check(op string, u int) error {
	if u < 0 || u >= len(ds.parent) {
		err := partition.Errorf(partition.OutOfRange, op, "element %d not in 0…%d", u, len(ds.parent)-1)
		tracer().Errorf(err.Error())
		return err
	}
	return nil
}

// checkPair validates both arguments before either of them is resolved, as
// resolving may compress paths.
func (ds *DisjointSet) checkPair(op string, u, v int) error {
	if err := ds.check(op, u); err != nil {
		return err
	}
	return ds.check(op, v)
}

// root follows parent links without touching them.
func (ds *DisjointSet) root(u int) int {
	for u != ds.parent[u] {
		u = ds.parent[u]
	}
	return u
}

// compressPath lets every element on the path from u point to r directly.
func (ds *DisjointSet) compressPath(u, r int) {
	for u != r {
		u, ds.parent[u] = ds.parent[u], r
	}
}

// --- Options ---------------------------------------------------------------

// Option configures a disjoint set.
type Option func(ds *DisjointSet)

// PathCompression sets or clears path compression during Find. It overrides
// configuration key "disjoint.path-compression".
func PathCompression(b bool) Option {
	return func(ds *DisjointSet) {
		ds.compress = b
	}
}
