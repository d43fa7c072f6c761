/*
Package lexer splits text into a flat list of tokens: symbols, numbers, quoted
strings, operators and brackets. Every token remembers the line and column
(both starting at 1) where it begins, so that parsers built on top of it can
report errors precisely.

The lexer is generic, but has a few modes that exist for the Newick format:
square brackets can be read as comments, curly braces as tags, extra
characters can be allowed inside symbols, and a sign directly in front of a
number is glued to it (on by default), so that "-0.5" is a single number.

Lexing never fails with a Go error. Malformed input yields a single token of
kind Error as the last token, and the caller has to check for it.
*/
package lexer
