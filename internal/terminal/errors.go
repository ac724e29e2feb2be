package terminal

// inputError is an operator input problem. It carries the tag the
// presentation layer reports it under.
type inputError struct {
	msg string
	tag string
}

func (e *inputError) Error() string { return e.msg }

// Tag returns the stable identifier for the error.
func (e *inputError) Tag() string { return e.tag }

var (
	// ErrNonNumericInput is reported when a number was expected.
	ErrNonNumericInput error = &inputError{msg: "invalid input, please enter a number", tag: "non_numeric_input"}
	// ErrInvalidOption is reported for menu options outside 0-9.
	ErrInvalidOption error = &inputError{msg: "invalid option", tag: "invalid_option"}
)
