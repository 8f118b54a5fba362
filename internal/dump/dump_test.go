package dump

import (
	"testing"

	"github.com/parsegen/parsegen/ast"
	"github.com/stretchr/testify/require"
)

func TestGrammarDumpIncludesRuleNames(t *testing.T) {
	g := &ast.Grammar{
		Start: "expr",
		Rules: []*ast.Rule{
			{Name: "expr", Body: ast.Terminal{Value: "x"}},
		},
	}
	out := Grammar(g)
	require.Contains(t, out, "expr")
}
