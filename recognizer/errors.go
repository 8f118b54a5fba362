package recognizer

import (
	"fmt"
	"strings"

	"github.com/parsegen/parsegen/lexer"
)

// Error is the diagnostic the recognizer raises when it cannot match
// the input against the grammar: it names what was expected, what was
// actually found, and a small window of surrounding tokens so a
// caller can render a caret under the offending token.
type Error struct {
	Expected string
	Got      lexer.Token
	Context  []lexer.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Got.Pos, e.Message())
}

// Message is the unadorned diagnostic, without position.
func (e *Error) Message() string {
	got := "end of input"
	if !e.Got.IsEOF() {
		got = fmt.Sprintf("%q", e.Got.Value)
	}
	if e.Expected == "" {
		return fmt.Sprintf("unexpected %s", got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, got)
}

// ContextString renders Context as a single line with the offending
// token bracketed.
func (e *Error) ContextString() string {
	parts := make([]string, len(e.Context))
	for i, tok := range e.Context {
		if tok.Pos == e.Got.Pos && tok.Value == e.Got.Value {
			parts[i] = "[" + tok.String() + "]"
		} else {
			parts[i] = tok.String()
		}
	}
	return strings.Join(parts, " ")
}
