package newick

import (
	"io"
	"strconv"

	"github.com/TuftsBCB/phylo/lexer"
	"github.com/TuftsBCB/phylo/logging"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/pkg/errors"
)

// symbolChars may appear in unquoted names after the first character.
const symbolChars = ".-|/"

func lexOptions() []lexer.Option {
	return []lexer.Option{
		lexer.WithBracketComments(),
		lexer.WithComments(),
		lexer.WithBraceTags(),
		lexer.WithSymbolChars(symbolChars),
	}
}

// Reader corresponds to the state necessary to read trees from Newick
// formatted input. The whole input is read on the first call to one of its
// methods.
type Reader struct {
	input io.Reader
	p     *parser
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: r}
}

func (r *Reader) load() error {
	if r.p != nil {
		return nil
	}
	data, err := io.ReadAll(r.input)
	if err != nil {
		return errors.Wrap(err, "newick: reading input")
	}
	r.p = newParser(string(data))
	return nil
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (r *Reader) ReadAll() ([]*tree.DefaultTree, error) {
	trees := make([]*tree.DefaultTree, 0)
	for {
		t, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, then a nil tree is returned with `io.EOF` as the error.
func (r *Reader) ReadTree() (*tree.DefaultTree, error) {
	b, err := r.ReadBroker()
	if err != nil {
		return nil, err
	}
	return ToTree(b, DefaultConverter())
}

// ReadBroker is like ReadTree, but stops before building the tree.
func (r *Reader) ReadBroker() (*Broker, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.p.parseTree()
}

// ParseBroker reads the single tree in s into a broker. Comments after the
// final ';' are ignored.
func ParseBroker(s string) (*Broker, error) {
	p := newParser(s)
	b, err := p.parseTree()
	if err == io.EOF {
		return nil, structErrf(1, 1, "Unexpected end of input, expected a tree.")
	} else if err != nil {
		return nil, err
	}
	var trailing Element
	p.annotations(&trailing)
	if tok := p.peek(); tok.Kind != lexer.EOF {
		return nil, expectErr(tok, "the end of input after ';'")
	}
	return b, nil
}

// Parse reads the single tree in s.
func Parse(s string) (*tree.DefaultTree, error) {
	return ParseWith(s, DefaultConverter())
}

// ParseWith reads the single tree in s, filling in node and edge data with
// conv.
func ParseWith[N, E any](s string, conv Converter[N, E]) (*tree.Tree[N, E], error) {
	b, err := ParseBroker(s)
	if err != nil {
		return nil, err
	}
	return ToTree(b, conv)
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func newParser(s string) *parser {
	return &parser{tokens: lexer.Tokenize(s, lexOptions()...)}
}

// peek returns the current token. The token list always ends with an EOF or
// Error token, which is never consumed.
func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// parseTree reads elements up to and including the next ';'. It returns
// io.EOF if there is nothing but comments left.
func (p *parser) parseTree() (*Broker, error) {
	var pending Element
	p.annotations(&pending)
	if p.peek().Kind == lexer.EOF {
		return nil, io.EOF
	}

	b := &Broker{}

	// indices of the elements whose ')' is still to come
	var open []int
	for {
		// at the start of a subtree
		tok := p.peek()
		el := pending
		pending = Element{}
		el.Depth, el.line, el.column = len(open), tok.Line, tok.Column
		if tok.IsBracket('(') {
			p.next()
			b.PushBottom(el)
			open = append(open, b.Len()-1)
			p.annotations(&pending)
			continue
		}
		if err := p.label(&el); err != nil {
			return nil, err
		}
		b.PushBottom(el)

		// after a subtree
	AFTER:
		for {
			tok := p.next()
			switch {
			case tok.IsOperator(','):
				if len(open) == 0 {
					return nil, structErrf(tok.Line, tok.Column,
						"Unexpected ',' outside of parentheses.")
				}
				p.annotations(&pending)
				break AFTER
			case tok.IsBracket(')'):
				if len(open) == 0 {
					return nil, structErrf(tok.Line, tok.Column, "Unmatched ')'.")
				}
				inner := open[len(open)-1]
				open = open[:len(open)-1]
				if err := p.label(b.At(inner)); err != nil {
					return nil, err
				}
			case tok.IsOperator(';'):
				if len(open) > 0 {
					return nil, structErrf(tok.Line, tok.Column,
						"Missing ')': %d unclosed '('.", len(open))
				}
				logging.Sugar.Debugw("newick: read tree",
					"elements", b.Len(), "line", tok.Line)
				return b, nil
			case tok.Kind == lexer.EOF && len(open) > 0:
				return nil, structErrf(tok.Line, tok.Column,
					"Unexpected end of input: %d unclosed '('.", len(open))
			default:
				return nil, expectErr(tok, "',', ')' or ';'")
			}
		}
	}
}

// label reads the name, branch length, comments and tags of a node into el.
func (p *parser) label(el *Element) error {
	p.annotations(el)
	switch tok := p.peek(); tok.Kind {
	case lexer.Symbol, lexer.String, lexer.Number:
		p.next()
		el.Name = tok.Value
	}
	p.annotations(el)
	if p.peek().IsOperator(':') {
		p.next()
		tok := p.next()
		if tok.Kind != lexer.Number {
			return expectErr(tok, "a branch length after ':'")
		}
		length, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return structErrf(tok.Line, tok.Column,
				"Invalid branch length '%s'.", tok.Value)
		}
		el.BranchLength = &length
	}
	p.annotations(el)
	return nil
}

// annotations moves any comments and tags at the current position to el.
func (p *parser) annotations(el *Element) {
	for {
		switch tok := p.peek(); tok.Kind {
		case lexer.Comment:
			el.Comments = append(el.Comments, tok.Value)
		case lexer.Tag:
			el.Tags = append(el.Tags, tok.Value)
		default:
			return
		}
		p.next()
	}
}

func expectErr(tok lexer.Token, expected string) error {
	if tok.Kind == lexer.Error {
		return &ParseError{LexError, tok.Line, tok.Column, tok.Value}
	}
	if tok.Kind == lexer.EOF {
		return structErrf(tok.Line, tok.Column,
			"Unexpected end of input, expected %s.", expected)
	}
	return structErrf(tok.Line, tok.Column,
		"Unexpected %s '%s', expected %s.", tok.Kind, tok.Value, expected)
}
