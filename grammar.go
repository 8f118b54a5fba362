package parsegen

import (
	"github.com/parsegen/parsegen/analyze"
	"github.com/parsegen/parsegen/ast"
	"github.com/parsegen/parsegen/bnf"
	"github.com/parsegen/parsegen/emit"
	"github.com/parsegen/parsegen/meta"
)

// Grammar is a loaded, analyzed grammar: the pipeline from raw EBNF
// or BNF source through the meta-parser, the digit-idiom and
// left-recursion analysis, and the compiled IR, ready to build either
// backend from.
type Grammar struct {
	gast     *ast.Grammar
	analysis *analyze.Result
	prog     *emit.Program

	recoveryPoints []string
}

// Load parses source as a grammar definition and analyzes it.
// Classic BNF ("<name> ::= ...") is detected automatically and
// normalized to EBNF first; anything else is parsed as EBNF directly.
func Load(filename, source string, opts ...Option) (*Grammar, error) {
	text := source
	if bnf.Detect(source) {
		normalized, err := bnf.Normalize(source)
		if err != nil {
			return nil, err
		}
		text = normalized
	}

	gast, err := meta.Parse(filename, text)
	if err != nil {
		return nil, err
	}

	result, err := analyze.Analyze(gast)
	if err != nil {
		return nil, err
	}

	g := &Grammar{
		gast:     result.Grammar,
		analysis: result,
		prog:     emit.Translate(result),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AST returns the analyzed grammar tree, for callers that want to
// inspect or pretty-print it directly (see internal/dump).
func (g *Grammar) AST() *ast.Grammar {
	return g.gast
}

// Keywords returns the terminal literals classified as keywords.
func (g *Grammar) Keywords() map[string]bool {
	return g.analysis.Keywords
}

// Symbols returns the terminal literals classified as symbols, sorted
// longest first (the order the target lexer matches them in).
func (g *Grammar) Symbols() []string {
	return g.analysis.Symbols
}

// DigitIdiomRules names the rules analyze folded into the built-in
// integerConstant token.
func (g *Grammar) DigitIdiomRules() []string {
	return g.analysis.DigitIdiomRules
}

// Recognizer returns an interpreter-backed recognizer for this
// grammar: the preferred way to check whether an input matches,
// requiring no code generation step.
func (g *Grammar) Recognizer() *Recognizer {
	return &Recognizer{
		interp:         emit.NewInterpreter(g.prog),
		recoveryPoints: g.recoveryPoints,
	}
}

// Generate renders this grammar as standalone Go source for a
// recognizer package named pkg, for callers that want a compiled
// recognizer with no runtime dependency on this module's interpreter.
func (g *Grammar) Generate(pkg string) (string, error) {
	gen := &emit.Generator{PackageName: pkg}
	return gen.Generate(g.prog)
}

// Recognizer wraps emit.Interpreter with the grammar's recovery
// configuration, so repeated Parse calls don't need to repeat it.
type Recognizer struct {
	interp         *emit.Interpreter
	recoveryPoints []string
}

// Parse tokenizes input under filename and recognizes it against the
// grammar's start rule, requiring the whole input to be consumed.
func (r *Recognizer) Parse(filename, input string) error {
	return r.interp.Parse(filename, input, r.recoveryPoints)
}
