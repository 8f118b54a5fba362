// Command parsegen is a command-line front end for the parsegen module:
// check a grammar for errors, generate a standalone Go recognizer from
// it, or dump its internal representation for debugging.
package main

import "github.com/alecthomas/kong"

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Check   checkCmd `cmd:"" help:"Parse and analyze a grammar, reporting any errors."`
		Gen     genCmd   `cmd:"" help:"Generate a standalone Go recognizer from a grammar."`
		Dump    dumpCmd  `cmd:"" help:"Print the grammar AST or its token stream for a sample input."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line tool for parsegen.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
