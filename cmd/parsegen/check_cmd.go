package main

import (
	"fmt"
	"os"

	"github.com/parsegen/parsegen"
)

type checkCmd struct {
	Grammar string `arg:"" type:"existingfile" help:"Grammar file (EBNF or classic BNF)."`
}

func (c *checkCmd) Help() string {
	return `
Parses and analyzes a grammar file, reporting the keywords and symbols it
infers, any rules folded into the built-in integer idiom, and any error
found along the way (left recursion, BNF hyphen-fold collisions, syntax
errors).
`
}

func (c *checkCmd) Run() error {
	src, err := os.ReadFile(c.Grammar)
	if err != nil {
		return err
	}
	g, err := parsegen.Load(c.Grammar, string(src))
	if err != nil {
		return err
	}
	fmt.Printf("ok: %s\n", c.Grammar)
	fmt.Printf("keywords: %d\n", len(g.Keywords()))
	fmt.Printf("symbols:  %v\n", g.Symbols())
	if idioms := g.DigitIdiomRules(); len(idioms) > 0 {
		fmt.Printf("folded into integerConstant: %v\n", idioms)
	}
	return nil
}
