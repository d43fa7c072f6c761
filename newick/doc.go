/*
Package newick provides facilities for reading and writing trees in the
Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html, including
quoted labels and bracketed comments. Curly braces hold tags, as used by some
tools to mark branches.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.

Parsing happens in two steps. Text is first read into a Broker, which is a
flat list of elements in the order they appear in the text, each with its
depth in the tree. The broker is then turned into a tree.Tree, using a
Converter to fill in node and edge data. Writing goes the other way around.

Most programs only need Parse and Format, or a Reader and a Writer for
input that holds more than one tree:

	r := newick.NewReader(os.Stdin)
	trees, err := r.ReadAll()
*/
package newick
