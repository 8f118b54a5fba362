package analyze

import "fmt"

// GASTError is raised when the grammar AST itself is structurally
// unsound: direct left recursion, or a NonTerminal reference that
// names neither a defined rule nor a built-in.
type GASTError struct {
	Rule string
	Msg  string
}

func (e *GASTError) Error() string {
	return fmt.Sprintf("rule %q: %s", e.Rule, e.Msg)
}

func (e *GASTError) Message() string { return e.Msg }

func gastErrorf(rule, format string, args ...interface{}) *GASTError {
	return &GASTError{Rule: rule, Msg: fmt.Sprintf(format, args...)}
}
