// Package dump provides repr-based pretty-printers for the generator
// pipeline's intermediate data — the GAST and token streams — used by
// cmd/parsegen's dump subcommand.
package dump

import (
	"github.com/alecthomas/repr"

	"github.com/parsegen/parsegen/ast"
	"github.com/parsegen/parsegen/lexer"
)

// Grammar renders g as a Go-syntax-like, indented representation of
// its full node tree, for -v/--dump style CLI output.
func Grammar(g *ast.Grammar) string {
	return repr.String(g, repr.Indent("  "), repr.OmitEmpty(true))
}

// Tokens renders a token slice the same way, one call per token so
// long streams stay readable.
func Tokens(tokens []lexer.Token) string {
	return repr.String(tokens, repr.Indent("  "), repr.OmitEmpty(true))
}
