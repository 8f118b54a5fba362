package main

import (
	"os"

	"github.com/parsegen/parsegen"
)

type genCmd struct {
	Package string `arg:"" required:"" help:"Go package name for the generated recognizer."`
	Grammar string `arg:"" type:"existingfile" help:"Grammar file (EBNF or classic BNF)."`
	Output  string `short:"o" help:"Output file (stdout if omitted)."`
}

func (c *genCmd) Help() string {
	return `
Generates standalone Go source implementing a recognizer for the given
grammar, with no runtime dependency on parsegen's own interpreter.
`
}

func (c *genCmd) Run() error {
	src, err := os.ReadFile(c.Grammar)
	if err != nil {
		return err
	}
	g, err := parsegen.Load(c.Grammar, string(src))
	if err != nil {
		return err
	}
	code, err := g.Generate(c.Package)
	if err != nil {
		return err
	}
	out := os.Stdout
	if c.Output != "" {
		out, err = os.Create(c.Output)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	_, err = out.WriteString(code)
	return err
}
