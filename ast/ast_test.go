package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarRuleLookup(t *testing.T) {
	g := &Grammar{
		Rules: []*Rule{
			{Name: "expr", Body: NonTerminal{Name: "term"}},
			{Name: "term", Body: Terminal{Value: "x"}},
		},
		Start: "expr",
	}
	require.NotNil(t, g.Rule("term"))
	require.Nil(t, g.Rule("missing"))
}

func TestStringRoundTripShape(t *testing.T) {
	rule := &Rule{
		Name: "ifStmt",
		Body: Sequence{Items: []Node{
			Terminal{Value: "if"},
			NonTerminal{Name: "expr"},
			Optional{Item: NonTerminal{Name: "elseClause"}},
			Repetition{Item: NonTerminal{Name: "stmt"}},
		}},
	}
	require.Equal(t, `ifStmt = "if", expr, [ elseClause ], { stmt } ;`, rule.String())
}

func TestAlternativeWrappedInsideSequence(t *testing.T) {
	seq := Sequence{Items: []Node{
		NonTerminal{Name: "a"},
		Alternative{Options: []Node{NonTerminal{Name: "b"}, NonTerminal{Name: "c"}}},
	}}
	require.Equal(t, "a, (b | c)", seq.String())
}
