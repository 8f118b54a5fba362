package meta

import (
	"github.com/parsegen/parsegen/ast"
)

// Parser is a single-token-lookahead recursive-descent parser over
// the EBNF meta-grammar, producing an ast.Grammar. It desugars the
// postfix +, *, and ? operators onto a single preceding term as it
// parses, so the AST it builds never contains them directly.
type Parser struct {
	lex  *metaLexer
	curr metaToken
}

// Parse lexes and parses a complete EBNF meta-grammar.
func Parse(filename, source string) (*ast.Grammar, error) {
	p := &Parser{lex: newMetaLexer(filename, source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseGrammar()
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.curr = tok
	return nil
}

func (p *Parser) eat(kind tokenKind, what string) (metaToken, error) {
	if p.curr.kind != kind {
		return metaToken{}, parseErrorf(p.curr.pos, "expected %s, got %q", what, p.curr.value)
	}
	tok := p.curr
	if err := p.advance(); err != nil {
		return metaToken{}, err
	}
	return tok, nil
}

func (p *Parser) parseGrammar() (*ast.Grammar, error) {
	g := &ast.Grammar{}
	for p.curr.kind != tokEOF {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		g.Rules = append(g.Rules, rule)
	}
	if len(g.Rules) == 0 {
		return nil, parseErrorf(p.curr.pos, "grammar has no rules")
	}
	g.Start = g.Rules[0].Name
	return g, nil
}

func (p *Parser) parseRule() (*ast.Rule, error) {
	name, err := p.eat(tokIdent, "rule name")
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(tokEquals, `"="`); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(tokSemicolon, `";"`); err != nil {
		return nil, err
	}
	return &ast.Rule{Name: name.value, Body: body}, nil
}

func (p *Parser) parseExpression() (ast.Node, error) {
	first, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.curr.kind != tokPipe {
		return first, nil
	}
	options := []ast.Node{first}
	for p.curr.kind == tokPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		options = append(options, next)
	}
	return ast.Alternative{Options: options}, nil
}

func (p *Parser) parseSequence() (ast.Node, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.curr.kind != tokComma {
		return first, nil
	}
	items := []ast.Node{first}
	for p.curr.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return ast.Sequence{Items: items}, nil
}

// parseTerm parses a single atom and desugars a trailing *, +, or ?
// onto it: "x*" becomes Repetition(x), "x?" becomes Optional(x), and
// "x+" becomes Sequence([x, Repetition(x)]) — one-or-more is "one,
// then zero-or-more more".
func (p *Parser) parseTerm() (ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.curr.kind {
	case tokStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Repetition{Item: atom}, nil
	case tokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Sequence{Items: []ast.Node{atom, ast.Repetition{Item: atom}}}, nil
	case tokQuestion:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Optional{Item: atom}, nil
	default:
		return atom, nil
	}
}

func (p *Parser) parseAtom() (ast.Node, error) {
	switch p.curr.kind {
	case tokIdent:
		tok, _ := p.eat(tokIdent, "identifier")
		return ast.NonTerminal{Name: tok.value}, nil
	case tokTerminal:
		tok, _ := p.eat(tokTerminal, "terminal")
		return ast.Terminal{Value: tok.value}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case tokLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(tokRBracket, `"]"`); err != nil {
			return nil, err
		}
		return ast.Optional{Item: inner}, nil
	case tokLBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(tokRBrace, `"}"`); err != nil {
			return nil, err
		}
		return ast.Repetition{Item: inner}, nil
	default:
		return nil, parseErrorf(p.curr.pos, "expected identifier, terminal, or group, got %q", p.curr.value)
	}
}
