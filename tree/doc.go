/*
Package tree provides the in-memory representation of a rooted phylogenetic
tree, and a family of iterators to walk it.

A tree is stored in three arenas: nodes, edges and links. A link is one end of
an edge as seen from one node. Every link knows its node, its edge, the link
at the other end of the same edge (its outer link), and the next link around
the same node. The links around a node form a ring, so a leaf has a ring of
one link and a node with d neighbours has a ring of d links. All references
are plain integer indices into the arenas, which are dense and never change
for the lifetime of a tree. External code may keep parallel slices keyed by
node or edge index.

Each edge has a primary link, on the node closer to the root, and a secondary
link, on the node further away. Each node points at its primary link, the
link toward its parent. For the root, this is the root link, which is also
where its ring of children starts.

The payloads of nodes and edges are type parameters. DefaultTree carries the
fields that can be read from and written to Newick text.

Trees are not safe for concurrent mutation. Any number of goroutines may walk
the same tree at the same time, as long as nobody modifies it meanwhile.
*/
package tree
