package emit

import (
	"strings"

	"github.com/parsegen/parsegen/lexer"
	"github.com/parsegen/parsegen/recognizer"
)

// Interpreter executes a Program's IR directly against a
// recognizer.Recognizer. This is the preferred backend: it requires
// no code generation step and is what Grammar.Recognizer returns in
// the root package.
type Interpreter struct {
	prog *Program
}

// NewInterpreter builds an Interpreter for prog.
func NewInterpreter(prog *Program) *Interpreter {
	return &Interpreter{prog: prog}
}

// furthest tracks the deepest point the recognizer reached before
// backtracking, so a top-level failure can report the most useful
// "expected" diagnostic instead of whatever the outermost alternative
// happened to try last.
type furthest struct {
	pos      int
	expected []string
}

func (f *furthest) record(r *recognizer.Recognizer, expected string) {
	pos := r.Mark()
	switch {
	case pos > f.pos:
		f.pos = pos
		f.expected = []string{expected}
	case pos == f.pos:
		for _, e := range f.expected {
			if e == expected {
				return
			}
		}
		f.expected = append(f.expected, expected)
	}
}

// Parse tokenizes input against the Program's keyword/symbol tables
// and attempts to recognize it starting from the Program's start
// rule, requiring the whole input to be consumed. recoveryPoints, if
// non-empty, are token values TrySyncRecover will use if exposed by a
// caller building multi-error diagnostics; Parse itself stops at the
// first failure.
func (interp *Interpreter) Parse(filename, input string, recoveryPoints []string) error {
	tokens, err := lexer.Tokenize(filename, input, interp.prog.Keywords, interp.prog.Symbols)
	if err != nil {
		return err
	}
	r := recognizer.New(tokens, recoveryPoints)
	f := &furthest{}

	root, ok := interp.prog.Rules[interp.prog.Start]
	if !ok {
		return &recognizer.Error{Expected: "a defined start rule"}
	}

	if !interp.match(r, root, f) {
		return interp.failureAt(r, f)
	}
	if !r.AtEOF() {
		f.record(r, "end of input")
		return interp.failureAt(r, f)
	}
	return nil
}

func (interp *Interpreter) failureAt(r *recognizer.Recognizer, f *furthest) *recognizer.Error {
	r.Reset(f.pos)
	expected := strings.Join(f.expected, " or ")
	return r.Fail(expected)
}

func (interp *Interpreter) matchRule(r *recognizer.Recognizer, name string, f *furthest) bool {
	node, ok := interp.prog.Rules[name]
	if !ok {
		f.record(r, "rule "+name)
		return false
	}
	return interp.match(r, node, f)
}

func (interp *Interpreter) match(r *recognizer.Recognizer, n *Node, f *furthest) bool {
	switch n.Kind {
	case True:
		return true

	case MatchKeyword:
		if r.Keyword(n.Value) {
			return true
		}
		f.record(r, quote(n.Value))
		return false

	case MatchSymbol:
		if r.Symbol(n.Value) {
			return true
		}
		f.record(r, quote(n.Value))
		return false

	case Identifier:
		if _, ok := r.Identifier(); ok {
			return true
		}
		f.record(r, "identifier")
		return false

	case Integer:
		if _, ok := r.Integer(); ok {
			return true
		}
		f.record(r, "integer")
		return false

	case String:
		if _, ok := r.StringLiteral(); ok {
			return true
		}
		f.record(r, "string literal")
		return false

	case CallRule:
		return interp.matchRule(r, n.Value, f)

	case Seq:
		mark := r.Mark()
		for _, child := range n.Children {
			if !interp.match(r, child, f) {
				r.Reset(mark)
				return false
			}
		}
		return true

	case Alt:
		for _, child := range n.Children {
			mark := r.Mark()
			if interp.match(r, child, f) {
				return true
			}
			r.Reset(mark)
		}
		return false

	case Star:
		for {
			mark := r.Mark()
			if !interp.match(r, n.Children[0], f) {
				r.Reset(mark)
				return true
			}
			if r.Mark() == mark {
				// Zero-consumption guard: the child matched without
				// advancing the cursor, so looping again would spin
				// forever. Treat one such match as the whole
				// repetition and stop.
				return true
			}
		}

	case Opt:
		mark := r.Mark()
		if !interp.match(r, n.Children[0], f) {
			r.Reset(mark)
		}
		return true

	default:
		return false
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}
