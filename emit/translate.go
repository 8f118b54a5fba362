package emit

import (
	"github.com/parsegen/parsegen/analyze"
	"github.com/parsegen/parsegen/ast"
)

// Translate compiles an analyzed grammar into a Program. result is
// expected to already have had the digit idiom folded and terminals
// classified by analyze.Analyze.
func Translate(result *analyze.Result) *Program {
	prog := &Program{
		Rules:    make(map[string]*Node, len(result.Grammar.Rules)),
		Start:    result.Grammar.Start,
		Keywords: result.Keywords,
		Symbols:  result.Symbols,
	}
	// Seed the built-in pseudo-rules so a grammar whose start rule
	// itself folded into one of them (e.g. the whole grammar is just
	// the digit idiom) still resolves via Rules lookup; a grammar that
	// defines a rule under one of these names overrides the seed below.
	prog.Rules[analyze.BuiltinIdentifier] = &Node{Kind: Identifier}
	prog.Rules[analyze.BuiltinInteger] = &Node{Kind: Integer}
	prog.Rules[analyze.BuiltinString] = &Node{Kind: String}

	for _, rule := range result.Grammar.Rules {
		prog.Rules[rule.Name] = translateNode(rule.Body, result.Keywords)
	}
	return prog
}

func translateNode(n ast.Node, keywords map[string]bool) *Node {
	switch v := n.(type) {
	case ast.Terminal:
		if v.Value == "" {
			return &Node{Kind: True}
		}
		if keywords[v.Value] {
			return &Node{Kind: MatchKeyword, Value: v.Value}
		}
		return &Node{Kind: MatchSymbol, Value: v.Value}

	case ast.NonTerminal:
		switch v.Name {
		case analyze.BuiltinIdentifier:
			return &Node{Kind: Identifier}
		case analyze.BuiltinInteger:
			return &Node{Kind: Integer}
		case analyze.BuiltinString:
			return &Node{Kind: String}
		default:
			return &Node{Kind: CallRule, Value: v.Name}
		}

	case ast.Sequence:
		children := make([]*Node, len(v.Items))
		for i, item := range v.Items {
			children[i] = translateNode(item, keywords)
		}
		return &Node{Kind: Seq, Children: children}

	case ast.Alternative:
		children := make([]*Node, len(v.Options))
		for i, opt := range v.Options {
			children[i] = translateNode(opt, keywords)
		}
		return &Node{Kind: Alt, Children: children}

	case ast.Repetition:
		return &Node{Kind: Star, Children: []*Node{translateNode(v.Item, keywords)}}

	case ast.Optional:
		return &Node{Kind: Opt, Children: []*Node{translateNode(v.Item, keywords)}}

	default:
		panic("emit: unsupported node type in translation")
	}
}
