package meta

import (
	"testing"

	"github.com/parsegen/parsegen/ast"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleRule(t *testing.T) {
	g, err := Parse("", `digit = "0" | "1" ;`)
	require.NoError(t, err)
	require.Len(t, g.Rules, 1)
	require.Equal(t, "digit", g.Start)

	alt, ok := g.Rules[0].Body.(ast.Alternative)
	require.True(t, ok)
	require.Len(t, alt.Options, 2)
}

func TestParseStarInsideSequenceDesugarsToRepetition(t *testing.T) {
	g, err := Parse("", `number = digit, digit* ;`)
	require.NoError(t, err)
	seq, ok := g.Rules[0].Body.(ast.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Items, 2)
	_, ok = seq.Items[1].(ast.Repetition)
	require.True(t, ok)
}

func TestParsePlusOperator(t *testing.T) {
	g, err := Parse("", `number = digit+ ;`)
	require.NoError(t, err)
	seq, ok := g.Rules[0].Body.(ast.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Items, 2)
	nt, ok := seq.Items[0].(ast.NonTerminal)
	require.True(t, ok)
	require.Equal(t, "digit", nt.Name)
	rep, ok := seq.Items[1].(ast.Repetition)
	require.True(t, ok)
	require.Equal(t, nt, rep.Item)
}

func TestParseOptionalBracketAndGroup(t *testing.T) {
	g, err := Parse("", `stmt = "if", expr, [ "else", stmt ] ;`)
	require.NoError(t, err)
	seq, ok := g.Rules[0].Body.(ast.Sequence)
	require.True(t, ok)
	opt, ok := seq.Items[2].(ast.Optional)
	require.True(t, ok)
	inner, ok := opt.Item.(ast.Sequence)
	require.True(t, ok)
	require.Len(t, inner.Items, 2)
}

func TestParseMultipleRules(t *testing.T) {
	g, err := Parse("", `
		expr = term, { ("+" | "-"), term } ;
		term = digit ;
		digit = "0" ;
	`)
	require.NoError(t, err)
	require.Len(t, g.Rules, 3)
	require.Equal(t, "expr", g.Start)
	require.NotNil(t, g.Rule("term"))
}

func TestParseMissingEqualsIsParseError(t *testing.T) {
	_, err := Parse("g.ebnf", `digit "0" ;`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseEmptyGrammarIsError(t *testing.T) {
	_, err := Parse("", ``)
	require.Error(t, err)
}

func TestParseSkipsHashLineComments(t *testing.T) {
	g, err := Parse("", "# a leading comment\ndigit = \"0\" | \"1\" ; # trailing too\n")
	require.NoError(t, err)
	require.Len(t, g.Rules, 1)
	require.Equal(t, "digit", g.Start)
}

func TestParseTerminalWithEscapedQuote(t *testing.T) {
	g, err := Parse("", `quote = "\"" ;`)
	require.NoError(t, err)
	term, ok := g.Rules[0].Body.(ast.Terminal)
	require.True(t, ok)
	require.Equal(t, `"`, term.Value)
}
