package lexer

import (
	"bytes"
	"fmt"
)

// Kind is the lexical class of a token.
type Kind int

const (
	Unknown Kind = iota
	Error
	EOF
	White
	Comment
	Tag
	Symbol
	Number
	String
	Operator
	Bracket
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Error:
		return "Error"
	case EOF:
		return "EOF"
	case White:
		return "Whitespace"
	case Comment:
		return "Comment"
	case Tag:
		return "Tag"
	case Symbol:
		return "Symbol"
	case Number:
		return "Number"
	case String:
		return "String"
	case Operator:
		return "Operator"
	case Bracket:
		return "Bracket"
	}
	panic(fmt.Sprintf("BUG: Unknown token kind '%d'.", int(k)))
}

// Token is a single lexical unit. For strings, comments and tags, Value
// holds the content without the delimiters (and with escapes resolved). For
// Error tokens, Value is a description of the problem.
type Token struct {
	Kind   Kind
	Line   int
	Column int
	Value  string
}

// IsOperator returns whether the token is the operator c.
func (t Token) IsOperator(c byte) bool {
	return t.Kind == Operator && len(t.Value) == 1 && t.Value[0] == c
}

// IsBracket returns whether the token is the bracket c.
func (t Token) IsBracket(c byte) bool {
	return t.Kind == Bracket && len(t.Value) == 1 && t.Value[0] == c
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %d:%d, %q)", t.Kind, t.Line, t.Column, t.Value)
}

// ValidateBrackets reports whether all bracket tokens are balanced and
// closed by a bracket of the same type. It says nothing about whether the
// tokens make sense otherwise.
func ValidateBrackets(tokens []Token) bool {
	var open []byte
	for _, tok := range tokens {
		if tok.Kind != Bracket {
			continue
		}
		c := tok.Value[0]
		switch c {
		case '(', '[', '{':
			open = append(open, c)
		case ')', ']', '}':
			if len(open) == 0 || open[len(open)-1] != matching(c) {
				return false
			}
			open = open[:len(open)-1]
		}
	}
	return len(open) == 0
}

func matching(closer byte) byte {
	switch closer {
	case ')':
		return '('
	case ']':
		return '['
	case '}':
		return '{'
	}
	return 0
}

// Dump returns a listing of the tokens, one per line.
func Dump(tokens []Token) string {
	buf := new(bytes.Buffer)
	for i, tok := range tokens {
		fmt.Fprintf(buf, "[%03d] %-10s at %d:%d  %q\n",
			i, tok.Kind, tok.Line, tok.Column, tok.Value)
	}
	return buf.String()
}
