package meta

import (
	"fmt"

	"github.com/parsegen/parsegen/lexer"
)

// LexError is raised by the meta-lexer when it encounters source text
// it cannot tokenize.
type LexError struct {
	Msg string
	Pos lexer.Position
}

func (e *LexError) Error() string   { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }
func (e *LexError) Message() string { return e.Msg }

func errorf(pos lexer.Position, format string, args ...interface{}) *LexError {
	return &LexError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// ParseError is raised by the meta-parser when meta-tokens don't form
// a valid grammar, e.g. a missing "=" or an unclosed "[".
type ParseError struct {
	Msg string
	Pos lexer.Position
}

func (e *ParseError) Error() string   { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }
func (e *ParseError) Message() string { return e.Msg }

func parseErrorf(pos lexer.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
