package logquery

import "fmt"

// SyntaxError reports a malformed filter expression. The message is shown to
// the caller verbatim so the expression can be corrected and resubmitted.
type SyntaxError struct {
	Expr   string
	Pos    int
	Reason string
}

func (x *SyntaxError) Error() string {
	return fmt.Sprintf("invalid filter expression at position %d: %s", x.Pos, x.Reason)
}

func newSyntaxError(expr string, pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Expr:   expr,
		Pos:    pos,
		Reason: fmt.Sprintf(format, args...),
	}
}
