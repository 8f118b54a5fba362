// Package analyze walks a parsed ast.Grammar and produces the facts
// emit and the recognizer runtime need that the grammar text alone
// doesn't carry — which terminals are keywords vs. symbols, which
// rules are really the "digit, { digit }" idiom for an integer
// literal in disguise, and whether any rule is directly
// left-recursive.
package analyze

import (
	"sort"
	"unicode"

	"github.com/parsegen/parsegen/ast"
)

// Built-in nonterminal names the recognizer provides natively; a
// grammar never defines these itself, but may end up referencing them
// after the digit-idiom rewrite below.
const (
	BuiltinIdentifier = "identifier"
	BuiltinInteger    = "integerConstant"
	BuiltinString     = "stringLiteral"
)

// Result is everything analyze derives from a grammar.
type Result struct {
	// Grammar is the (possibly rewritten) grammar: any rule matching
	// the digit idiom is removed and its references repointed at the
	// BuiltinInteger pseudo-rule.
	Grammar *ast.Grammar

	// Keywords are terminal literals that are identifier-shaped, e.g.
	// "if", "return".
	Keywords map[string]bool

	// Symbols are terminal literals that are not, e.g. "+", "{".
	Symbols []string

	// DigitIdiomRules names the rules analyze recognized as the
	// "digit, { digit }" idiom and folded into BuiltinInteger.
	DigitIdiomRules []string
}

// Analyze runs terminal classification, the digit-idiom rewrite, and
// left-recursion detection over g. It does not mutate g; Result.Grammar
// is a new value.
func Analyze(g *ast.Grammar) (*Result, error) {
	idiomRules := findDigitIdiomRules(g)

	rewritten := rewriteGrammar(g, idiomRules)

	if err := checkDanglingReferences(rewritten); err != nil {
		return nil, err
	}

	if err := checkLeftRecursion(rewritten); err != nil {
		return nil, err
	}

	keywords, symbols := classifyTerminals(rewritten)

	names := make([]string, 0, len(idiomRules))
	for name := range idiomRules {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Result{
		Grammar:         rewritten,
		Keywords:        keywords,
		Symbols:         symbols,
		DigitIdiomRules: names,
	}, nil
}

// findDigitIdiomRules finds every rule whose body is structurally
// "X, { X }" or bare "X+" for some nonterminal X referring to a
// single-digit-like rule — the classic "number = digit, { digit }"
// idiom — and reports the outer rule's name as foldable into
// BuiltinInteger.
//
// This is checked structurally rather than by rule name, so any
// two-rule pair with this shape folds, not just ones literally named
// "number" and "digit".
func findDigitIdiomRules(g *ast.Grammar) map[string]bool {
	idiom := map[string]bool{}
	for _, rule := range g.Rules {
		seq, ok := rule.Body.(ast.Sequence)
		if !ok || len(seq.Items) != 2 {
			continue
		}
		first, ok := seq.Items[0].(ast.NonTerminal)
		if !ok {
			continue
		}
		rep, ok := seq.Items[1].(ast.Repetition)
		if !ok {
			continue
		}
		second, ok := rep.Item.(ast.NonTerminal)
		if !ok || second.Name != first.Name {
			continue
		}
		if isSingleDigitRule(g, first.Name) {
			idiom[rule.Name] = true
		}
	}
	return idiom
}

// isSingleDigitRule reports whether name's rule body is an
// Alternative (or bare Terminal) of single decimal-digit literals
// only, the "digit = '0' | '1' | ... | '9'" shape.
func isSingleDigitRule(g *ast.Grammar, name string) bool {
	rule := g.Rule(name)
	if rule == nil {
		return false
	}
	check := func(n ast.Node) bool {
		t, ok := n.(ast.Terminal)
		return ok && len(t.Value) == 1 && unicode.IsDigit([]rune(t.Value)[0])
	}
	if alt, ok := rule.Body.(ast.Alternative); ok {
		for _, opt := range alt.Options {
			if !check(opt) {
				return false
			}
		}
		return len(alt.Options) > 0
	}
	return check(rule.Body)
}

// rewriteGrammar drops every idiom-matched rule definition and
// repoints every surviving reference to it at BuiltinInteger.
func rewriteGrammar(g *ast.Grammar, idiom map[string]bool) *ast.Grammar {
	out := &ast.Grammar{Start: g.Start}
	if idiom[out.Start] {
		out.Start = BuiltinInteger
	}
	for _, rule := range g.Rules {
		if idiom[rule.Name] {
			continue
		}
		out.Rules = append(out.Rules, &ast.Rule{
			Name: rule.Name,
			Body: rewriteNode(rule.Body, idiom),
		})
	}
	return out
}

func rewriteNode(n ast.Node, idiom map[string]bool) ast.Node {
	switch v := n.(type) {
	case ast.NonTerminal:
		if idiom[v.Name] {
			return ast.NonTerminal{Name: BuiltinInteger}
		}
		return v
	case ast.Sequence:
		items := make([]ast.Node, len(v.Items))
		for i, item := range v.Items {
			items[i] = rewriteNode(item, idiom)
		}
		return ast.Sequence{Items: items}
	case ast.Alternative:
		options := make([]ast.Node, len(v.Options))
		for i, opt := range v.Options {
			options[i] = rewriteNode(opt, idiom)
		}
		return ast.Alternative{Options: options}
	case ast.Repetition:
		return ast.Repetition{Item: rewriteNode(v.Item, idiom)}
	case ast.Optional:
		return ast.Optional{Item: rewriteNode(v.Item, idiom)}
	default:
		return n
	}
}

// classifyTerminals walks every Terminal literal reachable in g and
// buckets it as a keyword (identifier-shaped) or a symbol (anything
// else); the empty terminal classifies as neither and is ignored.
func classifyTerminals(g *ast.Grammar) (map[string]bool, []string) {
	keywords := map[string]bool{}
	symbolSet := map[string]bool{}
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case ast.Terminal:
			if v.Value == "" {
				return
			}
			if isIdentifierShaped(v.Value) {
				keywords[v.Value] = true
			} else {
				symbolSet[v.Value] = true
			}
		case ast.Sequence:
			for _, item := range v.Items {
				walk(item)
			}
		case ast.Alternative:
			for _, opt := range v.Options {
				walk(opt)
			}
		case ast.Repetition:
			walk(v.Item)
		case ast.Optional:
			walk(v.Item)
		}
	}
	for _, rule := range g.Rules {
		walk(rule.Body)
	}
	symbols := make([]string, 0, len(symbolSet))
	for s := range symbolSet {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return len(symbols[i]) > len(symbols[j]) })
	return keywords, symbols
}

func isIdentifierShaped(s string) bool {
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// checkDanglingReferences walks every NonTerminal reachable from the
// (rewritten) grammar and fails before emission if any name is
// neither a defined rule nor one of the three built-ins: a typo'd or
// forward-undeclared reference must be caught here, not surface later
// as a confusing recognize-time "expected rule foo" failure.
func checkDanglingReferences(g *ast.Grammar) error {
	defined := make(map[string]bool, len(g.Rules)+3)
	defined[BuiltinIdentifier] = true
	defined[BuiltinInteger] = true
	defined[BuiltinString] = true
	for _, rule := range g.Rules {
		defined[rule.Name] = true
	}

	var walk func(ast.Node, string) error
	walk = func(n ast.Node, ruleName string) error {
		switch v := n.(type) {
		case ast.NonTerminal:
			if !defined[v.Name] {
				return gastErrorf(ruleName, "references undefined rule %q", v.Name)
			}
		case ast.Sequence:
			for _, item := range v.Items {
				if err := walk(item, ruleName); err != nil {
					return err
				}
			}
		case ast.Alternative:
			for _, opt := range v.Options {
				if err := walk(opt, ruleName); err != nil {
					return err
				}
			}
		case ast.Repetition:
			return walk(v.Item, ruleName)
		case ast.Optional:
			return walk(v.Item, ruleName)
		}
		return nil
	}

	for _, rule := range g.Rules {
		if err := walk(rule.Body, rule.Name); err != nil {
			return err
		}
	}
	return nil
}

// checkLeftRecursion detects direct left recursion: a rule whose
// first alternative, after descending through any leading Sequence,
// begins with a NonTerminal referencing the rule itself. Indirect
// left recursion (through another rule) is out of scope, as is any
// recursion that isn't the very first symbol of the very first
// alternative.
func checkLeftRecursion(g *ast.Grammar) error {
	for _, rule := range g.Rules {
		if leadsWithSelf(rule.Body, rule.Name) {
			return gastErrorf(rule.Name,
				"directly left-recursive; rewrite %q to factor the recursive call out of the leading position (e.g. as a trailing repetition)",
				rule.Name)
		}
	}
	return nil
}

func leadsWithSelf(n ast.Node, name string) bool {
	switch v := n.(type) {
	case ast.NonTerminal:
		return v.Name == name
	case ast.Sequence:
		if len(v.Items) == 0 {
			return false
		}
		return leadsWithSelf(v.Items[0], name)
	case ast.Alternative:
		if len(v.Options) == 0 {
			return false
		}
		return leadsWithSelf(v.Options[0], name)
	default:
		return false
	}
}
