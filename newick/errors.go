package newick

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tells apart errors in the characters of the input from errors
// in how the tokens are put together.
type ErrorKind int

const (
	LexError ErrorKind = iota + 1
	StructuralError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lexical error"
	case StructuralError:
		return "structural error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for use with errors.Is.
var (
	ErrLex        = errors.New("newick: lexical error")
	ErrStructural = errors.New("newick: structural error")
)

// ParseError describes why Newick input could not be read, and where.
// Line and Column are 1-based, or 0 when the broker holding the problem was
// not read from text.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("Error: %s", e.Msg)
	}
	return fmt.Sprintf("Error on line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Is makes errors.Is(err, ErrLex) and errors.Is(err, ErrStructural) work.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrLex:
		return e.Kind == LexError
	case ErrStructural:
		return e.Kind == StructuralError
	}
	return false
}

func structErrf(line, col int, format string, v ...interface{}) error {
	return &ParseError{StructuralError, line, col, fmt.Sprintf(format, v...)}
}
