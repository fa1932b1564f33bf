package timecost

import "errors"

// Failure kinds. A Failure wraps exactly one of these so callers can branch
// with errors.Is.
var (
	ErrInvalidNumber     = errors.New("invalid number")
	ErrTaxRateOutOfRange = errors.New("tax rate out of range")
	ErrZeroEffectiveRate = errors.New("zero effective rate")
)

// User-facing messages for each failure kind.
const (
	MsgInvalidNumber     = "Please enter valid numbers."
	MsgTaxRateOutOfRange = "Tax rate must be between 0 and 100."
	MsgZeroEffectiveRate = "A tax rate of 100% leaves no after-tax earnings."
)

// Failure is the error half of a Result.
type Failure struct {
	Err     error
	Message string
}

// Error returns the user-facing message.
func (f *Failure) Error() string { return f.Message }

// Unwrap exposes the sentinel for errors.Is.
func (f *Failure) Unwrap() error { return f.Err }

// Kind returns a stable machine-readable name for the failure.
func (f *Failure) Kind() string {
	switch {
	case errors.Is(f.Err, ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(f.Err, ErrTaxRateOutOfRange):
		return "tax_rate_out_of_range"
	case errors.Is(f.Err, ErrZeroEffectiveRate):
		return "zero_effective_rate"
	default:
		return "unknown"
	}
}

func invalidNumber() *Failure {
	return &Failure{Err: ErrInvalidNumber, Message: MsgInvalidNumber}
}

func taxRateOutOfRange() *Failure {
	return &Failure{Err: ErrTaxRateOutOfRange, Message: MsgTaxRateOutOfRange}
}

func zeroEffectiveRate() *Failure {
	return &Failure{Err: ErrZeroEffectiveRate, Message: MsgZeroEffectiveRate}
}
