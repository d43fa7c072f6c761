// Package bipartition computes the splits of the leaves of a tree induced by
// its edges, and compares trees by them.
//
// Removing an edge from a tree leaves two parts, and the leaves of each part
// are one side of the edge's bipartition. Leaves are identified by their
// labels, which must be distinct within a tree. The Robinson-Foulds distance
// between two trees on the same leaves is the number of splits found in only
// one of them.
package bipartition
