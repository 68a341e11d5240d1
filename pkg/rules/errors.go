package rules

// Code identifies a rules violation so clients can localize messages
// instead of parsing text.
type Code string

const (
	CodeInvalidState         Code = "invalid_state"
	CodeAlreadyOwned         Code = "already_owned"
	CodeInsufficientFunds    Code = "insufficient_funds"
	CodeMortgaged            Code = "mortgaged"
	CodeNotInJail            Code = "not_in_jail"
	CodeNoJailCard           Code = "no_jail_card"
	CodeCannotAffordJailFine Code = "cannot_afford_jail_fine"
	CodeInvalidMethod        Code = "invalid_method"
)

// Error is a rejected rules operation. It is a validation failure, not
// a persistence failure, and maps to a 4xx at the HTTP boundary.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds a coded rules violation. Callers outside the rules
// package use it for guard failures like acting out of turn.
func NewError(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func newError(code Code, msg string) *Error {
	return NewError(code, msg)
}

// AsRuleError returns the *Error inside err, or nil.
func AsRuleError(err error) *Error {
	if re, ok := err.(*Error); ok {
		return re
	}
	return nil
}
