package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/template"
)

// Generator renders a Program as standalone Go source for a
// recognizer package, instead of running it through Interpreter at
// request time. It's offered for callers that want an ahead-of-time
// compiled recognizer; the generated file still imports this module's
// lexer and recognizer packages.
//
// It combines a text/template envelope (via alecthomas/template) for
// the file's fixed scaffolding with hand-emitted Go expressions for
// each rule body, recursively walking the IR the same way a tree
// walker emits code for a syntax tree: one small closure per node,
// nested according to the node's shape.
type Generator struct {
	// PackageName is the package clause of the generated file.
	PackageName string
}

type ruleData struct {
	Name string
	Fn   string
	Body string
}

type fileData struct {
	Package  string
	Start    string
	Keywords string
	Symbols  string
	Rules    []ruleData
}

const codegenTemplateSource = `// Code generated by parsegen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/parsegen/parsegen/lexer"
	"github.com/parsegen/parsegen/recognizer"
)

// Keywords and Symbols classify the target lexer's tokens for this
// grammar.
var Keywords = map[string]bool{
{{.Keywords}}}

var Symbols = []string{
{{.Symbols}}}

// Parse tokenizes input and recognizes it against the {{.Start}} rule,
// requiring the whole input to be consumed.
func Parse(filename, input string) error {
	tokens, err := lexer.Tokenize(filename, input, Keywords, Symbols)
	if err != nil {
		return err
	}
	r := recognizer.New(tokens, nil)
	if !{{.Start | matchCall}}(r) {
		return r.Fail("a valid " + "{{.Start}}")
	}
	if !r.AtEOF() {
		return r.Fail("end of input")
	}
	return nil
}
{{range .Rules}}
// {{.Fn}} recognizes the {{.Name}} rule.
func {{.Fn}}(r *recognizer.Recognizer) bool {
	return {{.Body}}
}
{{end}}
`

var codegenTemplate = template.Must(template.New("parsegen").Funcs(template.FuncMap{
	"matchCall": ruleFuncName,
}).Parse(codegenTemplateSource))

func ruleFuncName(rule string) string {
	return "match_" + sanitizeIdent(rule)
}

func sanitizeIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	return b.String()
}

// Generate renders prog as a complete Go source file implementing a
// standalone recognizer.
func (g *Generator) Generate(prog *Program) (string, error) {
	names := make([]string, 0, len(prog.Rules))
	for name := range prog.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]ruleData, 0, len(names))
	for _, name := range names {
		rules = append(rules, ruleData{
			Name: name,
			Fn:   ruleFuncName(name),
			Body: genExpr(prog.Rules[name]),
		})
	}

	pkg := g.PackageName
	if pkg == "" {
		pkg = "recognizer"
	}

	data := fileData{
		Package:  pkg,
		Start:    prog.Start,
		Keywords: renderKeywords(prog.Keywords),
		Symbols:  renderSymbols(prog.Symbols),
		Rules:    rules,
	}

	var buf bytes.Buffer
	if err := codegenTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderKeywords(keywords map[string]bool) string {
	names := make([]string, 0, len(keywords))
	for k := range keywords {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, k := range names {
		fmt.Fprintf(&b, "\t%q: true,\n", k)
	}
	return b.String()
}

func renderSymbols(symbols []string) string {
	var b strings.Builder
	for _, s := range symbols {
		fmt.Fprintf(&b, "\t%q,\n", s)
	}
	return b.String()
}

// genExpr renders a single IR node as a Go boolean expression,
// nesting immediately-invoked closures for composite nodes exactly as
// the interpreter's own match dispatch is structured, so the
// generated code and the interpreted path can be reasoned about
// side by side.
func genExpr(n *Node) string {
	switch n.Kind {
	case True:
		return "true"

	case MatchKeyword:
		return fmt.Sprintf("r.Keyword(%q)", n.Value)

	case MatchSymbol:
		return fmt.Sprintf("r.Symbol(%q)", n.Value)

	case Identifier:
		return "func() bool { _, ok := r.Identifier(); return ok }()"

	case Integer:
		return "func() bool { _, ok := r.Integer(); return ok }()"

	case String:
		return "func() bool { _, ok := r.StringLiteral(); return ok }()"

	case CallRule:
		return fmt.Sprintf("%s(r)", ruleFuncName(n.Value))

	case Seq:
		var b strings.Builder
		b.WriteString("func(r *recognizer.Recognizer) bool {\n")
		b.WriteString("\t\tmark := r.Mark()\n")
		for _, c := range n.Children {
			fmt.Fprintf(&b, "\t\tif !(%s) {\n\t\t\tr.Reset(mark)\n\t\t\treturn false\n\t\t}\n", genExpr(c))
		}
		b.WriteString("\t\treturn true\n\t}(r)")
		return b.String()

	case Alt:
		var b strings.Builder
		b.WriteString("func(r *recognizer.Recognizer) bool {\n")
		for _, c := range n.Children {
			b.WriteString("\t\t{\n\t\t\tmark := r.Mark()\n")
			fmt.Fprintf(&b, "\t\t\tif %s {\n\t\t\t\treturn true\n\t\t\t}\n", genExpr(c))
			b.WriteString("\t\t\tr.Reset(mark)\n\t\t}\n")
		}
		b.WriteString("\t\treturn false\n\t}(r)")
		return b.String()

	case Star:
		var b strings.Builder
		b.WriteString("func(r *recognizer.Recognizer) bool {\n")
		b.WriteString("\t\tfor {\n\t\t\tmark := r.Mark()\n")
		fmt.Fprintf(&b, "\t\t\tif !(%s) {\n\t\t\t\tr.Reset(mark)\n\t\t\t\treturn true\n\t\t\t}\n", genExpr(n.Children[0]))
		b.WriteString("\t\t\tif r.Mark() == mark {\n\t\t\t\treturn true\n\t\t\t}\n\t\t}\n\t}(r)")
		return b.String()

	case Opt:
		var b strings.Builder
		b.WriteString("func(r *recognizer.Recognizer) bool {\n")
		b.WriteString("\t\tmark := r.Mark()\n")
		fmt.Fprintf(&b, "\t\tif !(%s) {\n\t\t\tr.Reset(mark)\n\t\t}\n", genExpr(n.Children[0]))
		b.WriteString("\t\treturn true\n\t}(r)")
		return b.String()

	default:
		return "false"
	}
}
