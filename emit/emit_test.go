package emit

import (
	"strings"
	"testing"

	"github.com/parsegen/parsegen/analyze"
	"github.com/parsegen/parsegen/meta"
	"github.com/stretchr/testify/require"
)

const arithmeticGrammar = `
expr = term, { ("+" | "-"), term } ;
term = number ;
number = digit, { digit } ;
digit = "0" | "1" | "2" | "3" | "4" | "5" | "6" | "7" | "8" | "9" ;
`

func compile(t *testing.T, source string) *Program {
	t.Helper()
	g, err := meta.Parse("", source)
	require.NoError(t, err)
	result, err := analyze.Analyze(g)
	require.NoError(t, err)
	return Translate(result)
}

func TestTranslateFoldsDigitIdiomIntoIntegerNode(t *testing.T) {
	prog := compile(t, arithmeticGrammar)
	term, ok := prog.Rules["term"]
	require.True(t, ok)
	require.Equal(t, Integer, term.Kind)
	_, hasNumber := prog.Rules["number"]
	require.False(t, hasNumber)
}

func TestInterpreterAcceptsArithmeticExpression(t *testing.T) {
	prog := compile(t, arithmeticGrammar)
	interp := NewInterpreter(prog)
	require.NoError(t, interp.Parse("", "12 + 3 - 4", nil))
}

func TestInterpreterRejectsTrailingOperator(t *testing.T) {
	prog := compile(t, arithmeticGrammar)
	interp := NewInterpreter(prog)
	err := interp.Parse("", "12 +", nil)
	require.Error(t, err)
}

func TestInterpreterRejectsEmptyInput(t *testing.T) {
	prog := compile(t, arithmeticGrammar)
	interp := NewInterpreter(prog)
	err := interp.Parse("", "", nil)
	require.Error(t, err)
}

func TestGeneratorProducesCompilableLookingSource(t *testing.T) {
	prog := compile(t, arithmeticGrammar)
	gen := &Generator{PackageName: "arith"}
	src, err := gen.Generate(prog)
	require.NoError(t, err)
	require.Contains(t, src, "package arith")
	require.Contains(t, src, "func match_expr(r *recognizer.Recognizer) bool {")
	require.Contains(t, src, "func Parse(filename, input string) error {")
	require.True(t, strings.Contains(src, `r.Symbol("+")`))
}

func TestOrderedChoiceCommitsToFirstMatch(t *testing.T) {
	// The bare-name alternative is tried first and succeeds on its own,
	// so the call-with-parens alternative is never attempted even
	// though it would have matched the whole input.
	g, err := meta.Parse("", `start = identifier | identifier, "(", ")" ;`)
	require.NoError(t, err)
	result, err := analyze.Analyze(g)
	require.NoError(t, err)
	prog := Translate(result)
	interp := NewInterpreter(prog)
	require.Error(t, interp.Parse("", "foo()", nil))
	require.NoError(t, interp.Parse("", "foo", nil))
}
