// Package lexer implements the generated target lexer: scanning raw
// source text for a user grammar into IDENTIFIER/KEYWORD/INTEGER/
// STRING/SYMBOL/EOF tokens, and the backtrackable Cursor the
// recognizer walks those tokens with.
package lexer
