// Package errors defines the failure taxonomy for the planning
// calculations: invalid input detected before any computation, and
// calculation failures raised from inside an iterative procedure.
package errors

import "fmt"

// ValidationError reports a parameter outside its documented domain.
// It is returned before any computation is attempted.
type ValidationError struct {
	Op  string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CalculationError reports a failure inside a calculation: an exhausted
// iteration bound, an unreachable target, or a non-finite intermediate
// value. The original cause is kept for unwrapping.
type CalculationError struct {
	Op  string
	Err error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed in %s: %v", e.Op, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// Invalid wraps err as a validation failure of op.
func Invalid(op string, err error) error {
	return &ValidationError{Op: op, Err: err}
}

// Calculation wraps err as a calculation failure of op.
func Calculation(op string, err error) error {
	return &CalculationError{Op: op, Err: err}
}

// Define specific error causes for better error handling
var (
	ErrNegativeRate        = fmt.Errorf("call rate must be non-negative")
	ErrNegativeAgents      = fmt.Errorf("agent count must be non-negative")
	ErrNonPositiveAgents   = fmt.Errorf("agent count must be positive")
	ErrNonPositiveAHT      = fmt.Errorf("average handle time must be positive")
	ErrNegativeSLA         = fmt.Errorf("service level target must be non-negative")
	ErrNegativeServiceTime = fmt.Errorf("service time must be non-negative")
	ErrNegativeTarget      = fmt.Errorf("answer time target must be non-negative")
	ErrNegativeIntensity   = fmt.Errorf("traffic intensity must be non-negative")
	ErrBoundExhausted      = fmt.Errorf("iteration bound exhausted")
	ErrNoCallsQueued       = fmt.Errorf("too few calls queued to reach the target")
	ErrNotFinite           = fmt.Errorf("calculation produced a non-finite value")
)
