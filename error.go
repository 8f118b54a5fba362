package parsegen

import "fmt"

// Error is the common shape of every diagnostic this module's
// packages raise (meta.LexError, meta.ParseError, bnf.CollisionError,
// analyze.GASTError, recognizer.Error, lexer.Error): a plain error
// plus an unadorned Message for callers that want to reformat it
// themselves, e.g. through package diag.
type Error interface {
	error
	Message() string
}

type wrappedError struct {
	msg   string
	cause error
}

func (w *wrappedError) Error() string   { return w.msg }
func (w *wrappedError) Message() string { return w.msg }
func (w *wrappedError) Unwrap() error   { return w.cause }

// Wrapf annotates err with an additional message, preserving err for
// errors.Is/errors.As.
func Wrapf(err error, format string, args ...interface{}) error {
	return &wrappedError{msg: fmt.Sprintf("%s: %s", fmt.Sprintf(format, args...), err.Error()), cause: err}
}
