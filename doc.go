// Package parsegen turns a grammar written in EBNF — or classic BNF,
// normalized on the fly — into a recognizer for the language it
// describes.
//
// Load parses and analyzes a grammar:
//
//	grammar, err := parsegen.Load("arith.ebnf", `
//	    expr   = term, { ("+" | "-"), term } ;
//	    term   = integerConstant ;
//	`)
//
// Grammar.Recognizer returns an interpreter-backed recognizer that
// walks the grammar directly against a given input:
//
//	err = grammar.Recognizer().Parse("", "1 + 2 - 3")
//
// Grammar.Generate instead renders the same grammar as standalone Go
// source, for callers that want a recognizer with no runtime
// dependency on this module's interpreter.
//
// The supported grammar syntax is ISO-style EBNF:
//
//   - `name = expr ;` a rule.
//   - `"literal"` a terminal; identifier-shaped literals become
//     keywords, everything else becomes a symbol.
//   - `a, b` sequencing.
//   - `a | b` ordered choice: the first alternative that matches wins.
//   - `{ a }` zero or more.
//   - `[ a ]` zero or one.
//   - `( a )` grouping.
//   - `a+`, `a*`, `a?` postfix one-or-more/zero-or-more/optional.
//
// A rule built from "digit, { digit }" over a single-digit-alternative
// "digit" rule is recognized as the idiom for an integer literal and
// folded into the built-in integerConstant token; identifier and
// stringLiteral are built in the same way.
package parsegen
