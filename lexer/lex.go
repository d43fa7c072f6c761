package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof = -1

const (
	operatorChars = "+-*/<>?!^=%&|,:;"
	bracketChars  = "()[]{}"
	digitChars    = "0123456789"
	signChars     = "+-"
)

// Option changes how text is tokenized.
type Option func(*options)

type options struct {
	whitespace      bool
	comments        bool
	bracketComments bool
	braceTags       bool
	glue            bool
	symbolChars     string
}

// WithWhitespace keeps runs of whitespace as White tokens.
func WithWhitespace() Option {
	return func(o *options) { o.whitespace = true }
}

// WithComments keeps Comment tokens in the output. Comments are only
// recognized when WithBracketComments is also given.
func WithComments() Option {
	return func(o *options) { o.comments = true }
}

// WithBracketComments reads "[...]" as a comment instead of two brackets.
func WithBracketComments() Option {
	return func(o *options) { o.bracketComments = true }
}

// WithBraceTags reads "{...}" as a Tag token instead of two brackets.
func WithBraceTags() Option {
	return func(o *options) { o.braceTags = true }
}

// WithoutSignGlue makes '+' and '-' always come out as operators.
func WithoutSignGlue() Option {
	return func(o *options) { o.glue = false }
}

// WithSymbolChars allows the given characters inside a symbol, after its
// first character.
func WithSymbolChars(chars string) Option {
	return func(o *options) { o.symbolChars = chars }
}

type stateFn func(lx *lexer) stateFn

type lexer struct {
	input string
	start int
	pos   int
	width int
	opts  options

	// position of start
	line, col int

	tokens []Token
}

// Tokenize splits text into tokens. The last token is always of kind EOF or
// Error; tokenizing stops at the first error.
func Tokenize(text string, opts ...Option) []Token {
	lx := &lexer{
		input: text,
		line:  1,
		col:   1,
		opts:  options{glue: true},
	}
	for _, opt := range opts {
		opt(&lx.opts)
	}
	for state := lexAny; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

func (lx *lexer) current() string {
	return lx.input[lx.start:lx.pos]
}

func (lx *lexer) next() (r rune) {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, lx.width = utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += lx.width
	return r
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

// peek returns but does not consume the next rune in the input.
func (lx *lexer) peek() rune {
	r := lx.next()
	lx.backup()
	return r
}

// peekAt returns the byte n bytes past the current position, or 0.
func (lx *lexer) peekAt(n int) byte {
	if lx.pos+n >= len(lx.input) {
		return 0
	}
	return lx.input[lx.pos+n]
}

// accept consumes the next rune if it's in valid.
func (lx *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, lx.next()) {
		return true
	}
	lx.backup()
	return false
}

// acceptRun consumes a run of runes from valid and returns how many there
// were.
func (lx *lexer) acceptRun(valid string) int {
	n := 0
	for strings.ContainsRune(valid, lx.next()) {
		n++
	}
	lx.backup()
	return n
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.line, lx.col = lx.advance(lx.line, lx.col, lx.input[lx.start:lx.pos])
	lx.start = lx.pos
}

func (lx *lexer) advance(line, col int, text string) (int, int) {
	for _, r := range text {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (lx *lexer) emit(kind Kind) {
	lx.emitValue(kind, lx.current())
}

func (lx *lexer) emitValue(kind Kind, value string) {
	keep := true
	switch kind {
	case White:
		keep = lx.opts.whitespace
	case Comment:
		keep = lx.opts.comments
	}
	if keep {
		lx.tokens = append(lx.tokens, Token{kind, lx.line, lx.col, value})
	}
	lx.ignore()
}

// errorf stops all lexing by emitting an error positioned at the current
// rune and returning nil.
func (lx *lexer) errorf(format string, values ...interface{}) stateFn {
	at := lx.pos - lx.width
	if at < lx.start {
		at = lx.start
	}
	line, col := lx.advance(lx.line, lx.col, lx.input[lx.start:at])
	return lx.fail(line, col, format, values...)
}

// errorStartf is like errorf, but positions the error at the beginning of
// the token being scanned.
func (lx *lexer) errorStartf(format string, values ...interface{}) stateFn {
	return lx.fail(lx.line, lx.col, format, values...)
}

func (lx *lexer) fail(line, col int, format string, values ...interface{}) stateFn {
	for i, value := range values {
		if v, ok := value.(rune); ok {
			values[i] = escapeSpecial(v)
		}
	}
	lx.tokens = append(lx.tokens, Token{
		Kind:   Error,
		Line:   line,
		Column: col,
		Value:  fmt.Sprintf(format, values...),
	})
	return nil
}

func lexAny(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case r == eof:
		lx.emit(EOF)
		return nil
	case isWhite(r):
		return lexWhite
	case r == '[' && lx.opts.bracketComments:
		return lexDelimited(']', Comment)
	case r == '{' && lx.opts.braceTags:
		return lexDelimited('}', Tag)
	case isLetter(r):
		return lexSymbol
	case isDigit(r):
		lx.backup()
		return lexNumber
	case r == '.' && isDigit(rune(lx.peekAt(0))):
		lx.backup()
		return lexNumber
	case isSign(r) && lx.opts.glue && lx.startsNumber():
		lx.backup()
		return lexNumber
	case r == '"' || r == '\'':
		lx.backup()
		return lexString
	case strings.ContainsRune(operatorChars, r):
		lx.emit(Operator)
		return lexAny
	case strings.ContainsRune(bracketChars, r):
		lx.emit(Bracket)
		return lexAny
	}
	return lx.errorf("Invalid character '%s'.", interface{}(r))
}

// startsNumber reports whether the input right after a sign is a number.
func (lx *lexer) startsNumber() bool {
	c := lx.peekAt(0)
	if c >= '0' && c <= '9' {
		return true
	}
	d := lx.peekAt(1)
	return c == '.' && d >= '0' && d <= '9'
}

func lexWhite(lx *lexer) stateFn {
	for isWhite(lx.peek()) {
		lx.next()
	}
	lx.emit(White)
	return lexAny
}

func lexSymbol(lx *lexer) stateFn {
	for {
		r := lx.next()
		if isLetter(r) || isDigit(r) ||
			(r != eof && strings.ContainsRune(lx.opts.symbolChars, r)) {
			continue
		}
		lx.backup()
		break
	}
	lx.emit(Symbol)
	return lexAny
}

func lexNumber(lx *lexer) stateFn {
	lx.accept(signChars)
	digits := lx.acceptRun(digitChars)
	if lx.accept(".") {
		if lx.acceptRun(digitChars) == 0 && digits == 0 {
			return lx.errorf("Invalid number '%s': expected a digit after '.'.",
				lx.current())
		}
	}
	if lx.accept("eE") {
		lx.accept(signChars)
		if lx.acceptRun(digitChars) == 0 {
			lx.next()
			return lx.errorf("Invalid number '%s': expected a digit in the "+
				"exponent.", lx.current())
		}
	}
	lx.emit(Number)
	return lexAny
}

func lexString(lx *lexer) stateFn {
	quote := lx.next()
	var sb strings.Builder
	for {
		r := lx.next()
		switch r {
		case eof:
			return lx.errorStartf("Unterminated string.")
		case '\\':
			e := lx.next()
			switch e {
			case eof:
				return lx.errorStartf("Unterminated string.")
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteRune(e)
			}
		case quote:
			if lx.peek() == quote {
				lx.next()
				sb.WriteRune(quote)
				continue
			}
			lx.emitValue(String, sb.String())
			return lexAny
		default:
			sb.WriteRune(r)
		}
	}
}

// lexDelimited scans the content up to closer, which must follow on the
// same or a later line. The opening delimiter has already been consumed.
func lexDelimited(closer rune, kind Kind) stateFn {
	return func(lx *lexer) stateFn {
		from := lx.pos
		for {
			r := lx.next()
			if r == eof {
				return lx.errorStartf("Unterminated %s.", strings.ToLower(kind.String()))
			}
			if r == closer {
				lx.emitValue(kind, lx.input[from:lx.pos-lx.width])
				return lexAny
			}
		}
	}
}

func isWhite(r rune) bool {
	switch r {
	case ' ', '\n', '\r', '\t', '\b', '\v', '\f':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func escapeSpecial(c rune) string {
	switch c {
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	case '\r':
		return "\\r"
	}
	return string(c)
}
