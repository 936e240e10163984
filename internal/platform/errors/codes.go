// Package errors provides the coded error type shared by seed tooling.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeInvalidConfig  Code = "SEED_INVALID_CONFIG"
	CodeInvalidFixture Code = "SEED_INVALID_FIXTURE"

	// Backend errors
	CodeTransport        Code = "SEED_TRANSPORT"
	CodeResponseDecode   Code = "SEED_RESPONSE_DECODE"
	CodeTokenMissing     Code = "SEED_TOKEN_MISSING"
	CodeUnexpectedStatus Code = "SEED_UNEXPECTED_STATUS"
)

// Input reports whether the code describes bad local input rather than a
// backend or network failure.
func (c Code) Input() bool {
	switch c {
	case CodeInvalidConfig, CodeInvalidFixture:
		return true
	default:
		return false
	}
}
