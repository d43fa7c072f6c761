package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/TuftsBCB/phylo/lexer"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/pkg/errors"
)

// WriterOptions selects what is written for each node.
type WriterOptions struct {
	PrintNames         bool
	PrintBranchLengths bool
	PrintComments      bool
	PrintTags          bool

	// The number of digits after the decimal point of branch lengths. A
	// negative value selects the fewest digits that read back as the same
	// number.
	Precision int
}

// DefaultWriterOptions writes everything, with exact branch lengths.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		PrintNames:         true,
		PrintBranchLengths: true,
		PrintComments:      true,
		PrintTags:          true,
		Precision:          -1,
	}
}

// Format returns t in Newick format, followed by a newline. Annotations are
// not checked: a comment containing ']' or a tag containing '}' is written
// as is and does not read back. Use FormatBroker or a Writer to reject them.
func Format(t *tree.DefaultTree, opts WriterOptions) string {
	return FormatWith(t, DefaultConverter(), opts)
}

// FormatWith is like Format for trees with any data, which conv turns into
// elements.
func FormatWith[N, E any](t *tree.Tree[N, E], conv Converter[N, E], opts WriterOptions) string {
	return formatElements(FromTree(t, t.Root(), conv), opts)
}

// FormatBroker returns the tree held by b in Newick format, followed by a
// newline.
func FormatBroker(b *Broker, opts WriterOptions) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	return formatElements(b, opts), nil
}

// formatElements writes a valid broker in preorder. The label of an inner
// node follows its closing parenthesis, so inner nodes wait on a stack until
// the depth drops back to theirs.
func formatElements(b *Broker, opts WriterOptions) string {
	var sb strings.Builder
	var open []*Element
	for i := 0; i < b.Len(); i++ {
		el := b.At(i)
		for n := len(open); n > 0 && open[n-1].Depth >= el.Depth; n-- {
			sb.WriteByte(')')
			writeLabel(&sb, open[n-1], opts)
			open = open[:n-1]
		}
		if i > 0 && b.At(i-1).Depth != el.Depth-1 {
			sb.WriteByte(',')
		}
		if i+1 < b.Len() && b.At(i+1).Depth > el.Depth {
			sb.WriteByte('(')
			open = append(open, el)
		} else {
			writeLabel(&sb, el, opts)
		}
	}
	for n := len(open); n > 0; n-- {
		sb.WriteByte(')')
		writeLabel(&sb, open[n-1], opts)
	}
	sb.WriteString(";\n")
	return sb.String()
}

func writeLabel(sb *strings.Builder, el *Element, opts WriterOptions) {
	if opts.PrintNames {
		sb.WriteString(quoteName(el.Name))
	}
	if opts.PrintBranchLengths && el.BranchLength != nil {
		sb.WriteByte(':')
		if opts.Precision < 0 {
			sb.WriteString(strconv.FormatFloat(*el.BranchLength, 'g', -1, 64))
		} else {
			sb.WriteString(strconv.FormatFloat(*el.BranchLength, 'f', opts.Precision, 64))
		}
	}
	if opts.PrintTags {
		for _, tag := range el.Tags {
			sb.WriteByte('{')
			sb.WriteString(tag)
			sb.WriteByte('}')
		}
	}
	if opts.PrintComments {
		for _, c := range el.Comments {
			sb.WriteByte('[')
			sb.WriteString(c)
			sb.WriteByte(']')
		}
	}
}

// quoteName returns name as is if it reads back as a single name token, and
// quoted otherwise.
func quoteName(name string) string {
	if name == "" {
		return ""
	}
	tokens := lexer.Tokenize(name, lexOptions()...)
	if len(tokens) == 2 && tokens[0].Value == name &&
		(tokens[0].Kind == lexer.Symbol || tokens[0].Kind == lexer.Number) {
		return name
	}
	name = strings.ReplaceAll(name, `\`, `\\`)
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// Writer writes trees in Newick format, one per line.
type Writer struct {
	Options WriterOptions
	buf     *bufio.Writer
}

// NewWriter returns a writer that writes everything about each tree to `w`.
// Flush must be called to make sure all output has been written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Options: DefaultWriterOptions(),
		buf:     bufio.NewWriter(w),
	}
}

// Write writes a single tree. It fails without writing anything if a
// comment or tag of t could not be read back.
func (w *Writer) Write(t *tree.DefaultTree) error {
	s, err := FormatBroker(FromTree(t, t.Root(), DefaultConverter()), w.Options)
	if err != nil {
		return err
	}
	if _, err := w.buf.WriteString(s); err != nil {
		return errors.Wrap(err, "newick: writing tree")
	}
	return nil
}

// WriteAll writes all trees and flushes the output.
func (w *Writer) WriteAll(trees []*tree.DefaultTree) error {
	for _, t := range trees {
		if err := w.Write(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return errors.Wrap(w.buf.Flush(), "newick: flushing output")
}
