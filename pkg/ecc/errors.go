package ecc

// These constants identify a specific Error.
const (
	// ErrOutOfRange is returned when constructing a field element from an
	// integer that is negative or not less than the field prime.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrNotOnCurve is returned when constructing a point whose coordinates
	// do not satisfy the secp256k1 curve equation y^2 = x^3 + 7.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrMismatchedCoords is returned when constructing a point with exactly
	// one of the two coordinates present.
	ErrMismatchedCoords = ErrorKind("ErrMismatchedCoords")

	// ErrDivideByZero is returned when inverting or dividing by the zero
	// field element, which has no multiplicative inverse.
	ErrDivideByZero = ErrorKind("ErrDivideByZero")
)

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field or curve arithmetic. It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
