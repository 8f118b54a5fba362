// Package recognizer implements the matching primitives a generated
// recognizer runs on: a backtrackable cursor over a token stream, the
// built-in identifier/integerConstant/stringLiteral predicates, and
// the diagnostics raised when none of a grammar's alternatives match.
//
// It deliberately has no notion of a grammar or of semantic actions —
// walking the GAST and deciding what to match next is emit's
// Interpreter's job (package emit); recognizer only answers "does the
// next token look like this" and "roll back to here".
package recognizer

import (
	"github.com/parsegen/parsegen/lexer"
)

// contextWindow is how many tokens on either side of a failure get
// attached to its Error for display.
const contextWindow = 3

// Recognizer walks a pre-lexed token stream, matching and
// backtracking as directed by its caller (normally emit.Interpreter).
type Recognizer struct {
	cursor   *lexer.Cursor
	recovery map[string]bool
}

// New builds a Recognizer over tokens. recoveryPoints names token
// values (usually statement terminators like ";") that
// TrySyncRecover will skip forward to on failure.
func New(tokens []lexer.Token, recoveryPoints []string) *Recognizer {
	recovery := make(map[string]bool, len(recoveryPoints))
	for _, p := range recoveryPoints {
		recovery[p] = true
	}
	return &Recognizer{cursor: lexer.NewCursor(tokens), recovery: recovery}
}

// Mark snapshots the current position for a later Reset.
func (r *Recognizer) Mark() int { return r.cursor.Mark() }

// Reset rolls back to a position previously returned by Mark.
func (r *Recognizer) Reset(mark int) { r.cursor.Reset(mark) }

// Peek returns the next token without consuming it.
func (r *Recognizer) Peek() lexer.Token { return r.cursor.Peek(0) }

// AtEOF reports whether the next token is the end-of-input token.
func (r *Recognizer) AtEOF() bool { return r.Peek().IsEOF() }

// Keyword consumes the next token if it is a KEYWORD with the given
// value.
func (r *Recognizer) Keyword(value string) bool {
	return r.matchExact(lexer.KEYWORD, value)
}

// Symbol consumes the next token if it is a SYMBOL with the given
// value.
func (r *Recognizer) Symbol(value string) bool {
	return r.matchExact(lexer.SYMBOL, value)
}

func (r *Recognizer) matchExact(kind lexer.Kind, value string) bool {
	tok := r.Peek()
	if tok.Kind == kind && tok.Value == value {
		r.cursor.Next()
		return true
	}
	return false
}

// Identifier consumes the next token if it is an IDENTIFIER, and
// returns its value.
func (r *Recognizer) Identifier() (string, bool) {
	return r.matchKind(lexer.IDENTIFIER)
}

// Integer consumes the next token if it is an INTEGER, and returns its
// value.
func (r *Recognizer) Integer() (string, bool) {
	return r.matchKind(lexer.INTEGER)
}

// StringLiteral consumes the next token if it is a STRING, and
// returns its (already-unescaped) value.
func (r *Recognizer) StringLiteral() (string, bool) {
	return r.matchKind(lexer.STRING)
}

func (r *Recognizer) matchKind(kind lexer.Kind) (string, bool) {
	tok := r.Peek()
	if tok.Kind == kind {
		r.cursor.Next()
		return tok.Value, true
	}
	return "", false
}

// Fail builds the Error for "expected" not being found at the current
// position, capturing a window of surrounding tokens as context.
func (r *Recognizer) Fail(expected string) *Error {
	got := r.Peek()
	pos := r.cursor.Pos()
	start := pos - contextWindow
	if start < 0 {
		start = 0
	}
	end := pos + contextWindow + 1
	return &Error{
		Expected: expected,
		Got:      got,
		Context:  r.cursor.Range(start, end),
	}
}

// TrySyncRecover is a best-effort error recovery strategy: it
// discards tokens up to and including the next recovery-point token,
// so a caller generating diagnostics for a whole file (rather than
// stopping at the first error) can keep going. It reports whether it
// found a recovery point before EOF.
func (r *Recognizer) TrySyncRecover() bool {
	for {
		tok := r.Peek()
		if tok.IsEOF() {
			return false
		}
		r.cursor.Next()
		if r.recovery[tok.Value] {
			return true
		}
	}
}
