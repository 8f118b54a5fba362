// Package ast defines the grammar abstract syntax tree (GAST): the
// in-memory representation a meta-grammar (EBNF, or BNF normalized to
// EBNF) is parsed into, and that analyze and emit operate on.
//
// Every node implements Node, and every node's String method
// round-trips it to EBNF-ish text, so the whole tree supports
// self-printing.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is any element of a grammar's right-hand side, or the grammar
// itself.
type Node interface {
	// String renders the node as EBNF-ish text.
	String() string
	node()
}

// Terminal is a literal string the target lexer must match verbatim,
// e.g. "if" or "+". An empty Terminal ("") is a legal, if unusual,
// input form that always matches without consuming input — see
// DESIGN.md.
type Terminal struct {
	Value string
}

func (Terminal) node() {}
func (t Terminal) String() string {
	return strconv.Quote(t.Value)
}

// NonTerminal is a reference to another rule by name.
type NonTerminal struct {
	Name string
}

func (NonTerminal) node() {}
func (n NonTerminal) String() string {
	return n.Name
}

// Sequence matches each of its elements in order.
type Sequence struct {
	Items []Node
}

func (Sequence) node() {}
func (s Sequence) String() string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		parts[i] = wrapIfNeeded(item)
	}
	return strings.Join(parts, ", ")
}

// Alternative tries each option in order, committing to the first
// that matches (ordered choice, not full disambiguation).
type Alternative struct {
	Options []Node
}

func (Alternative) node() {}
func (a Alternative) String() string {
	parts := make([]string, len(a.Options))
	for i, opt := range a.Options {
		parts[i] = wrapIfNeeded(opt)
	}
	return strings.Join(parts, " | ")
}

// Repetition matches its element zero or more times.
type Repetition struct {
	Item Node
}

func (Repetition) node() {}
func (r Repetition) String() string {
	return fmt.Sprintf("{ %s }", r.Item.String())
}

// Optional matches its element zero or one times.
type Optional struct {
	Item Node
}

func (Optional) node() {}
func (o Optional) String() string {
	return fmt.Sprintf("[ %s ]", o.Item.String())
}

// Rule is one production: a name bound to a right-hand side.
type Rule struct {
	Name string
	Body Node
}

func (Rule) node() {}
func (r Rule) String() string {
	return fmt.Sprintf("%s = %s ;", r.Name, r.Body.String())
}

// Grammar is an ordered set of rules. The first rule is the start
// rule unless a later pass designates another.
type Grammar struct {
	Rules []*Rule
	Start string
}

func (Grammar) node() {}

func (g Grammar) String() string {
	lines := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Rule looks up a rule by name, returning nil if none exists.
func (g *Grammar) Rule(name string) *Rule {
	for _, r := range g.Rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// wrapIfNeeded parenthesizes an Alternative nested inside a Sequence
// so round-tripped EBNF text parses back to the same tree.
func wrapIfNeeded(n Node) string {
	if _, ok := n.(Alternative); ok {
		return "(" + n.String() + ")"
	}
	return n.String()
}
