package main

import (
	"fmt"
	"os"

	"github.com/parsegen/parsegen"
	"github.com/parsegen/parsegen/internal/dump"
	"github.com/parsegen/parsegen/lexer"
)

type dumpCmd struct {
	Grammar string `arg:"" type:"existingfile" help:"Grammar file (EBNF or classic BNF)."`
	Input   string `help:"If set, tokenize this string against the grammar's lexicon and print the token stream instead of the AST."`
}

func (c *dumpCmd) Help() string {
	return `
Prints the grammar's analyzed AST, or, given --input, the token stream
that input tokenizes to under the grammar's inferred keywords and
symbols.
`
}

func (c *dumpCmd) Run() error {
	src, err := os.ReadFile(c.Grammar)
	if err != nil {
		return err
	}
	g, err := parsegen.Load(c.Grammar, string(src))
	if err != nil {
		return err
	}
	if c.Input == "" {
		fmt.Println(dump.Grammar(g.AST()))
		return nil
	}
	tokens, err := lexer.Tokenize("", c.Input, g.Keywords(), g.Symbols())
	if err != nil {
		return err
	}
	fmt.Println(dump.Tokens(tokens))
	return nil
}
