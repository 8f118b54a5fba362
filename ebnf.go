package parsegen

// String renders the grammar back out as EBNF text, after whatever
// normalization and analysis Load applied (BNF rewritten to EBNF, the
// digit idiom folded into integerConstant, and so on). This is the
// generator's own grammar pretty-printer, distinct from dump.Grammar
// which renders the full GAST node tree for debugging rather than
// grammar text a person would write.
func (g *Grammar) String() string {
	return g.gast.String()
}
