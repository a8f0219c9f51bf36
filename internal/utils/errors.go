package utils

import "fmt"

// InvalidRangeError represents a date range whose start falls after its end.
// It is rejected before any series generation happens.
type InvalidRangeError struct {
	Message string
}

// Error returns the error message string.
func (e *InvalidRangeError) Error() string {
	return e.Message
}

// NewInvalidRangeErrorf creates a new InvalidRangeError with a formatted message.
func NewInvalidRangeErrorf(format string, args ...interface{}) error {
	return &InvalidRangeError{
		Message: fmt.Sprintf(format, args...),
	}
}

// EmptyRangeError represents a date range containing no business days, or a
// generation run whose return series all came out empty. It is a
// user-correctable condition: widening the range resolves it.
type EmptyRangeError struct {
	Message string
}

// Error returns the error message string.
func (e *EmptyRangeError) Error() string {
	return e.Message
}

// NewEmptyRangeError creates a new EmptyRangeError with a specific message.
func NewEmptyRangeError(message string) error {
	return &EmptyRangeError{
		Message: message,
	}
}

// MisalignedSeriesError represents return series that do not share identical
// date alignment across instruments. This is an internal invariant violation,
// not a caller mistake: a correct generator never produces it.
type MisalignedSeriesError struct {
	Message string
}

// Error returns the error message string.
func (e *MisalignedSeriesError) Error() string {
	return e.Message
}

// NewMisalignedSeriesErrorf creates a new MisalignedSeriesError with a
// formatted message.
func NewMisalignedSeriesErrorf(format string, args ...interface{}) error {
	return &MisalignedSeriesError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NumericalError represents a failure inside the numerical pipeline, such as
// non-finite covariance entries or an eigen-decomposition that did not
// converge. It indicates a defect upstream and is never silently swallowed.
type NumericalError struct {
	Message string
}

// Error returns the error message string.
func (e *NumericalError) Error() string {
	return e.Message
}

// NewNumericalErrorf creates a new NumericalError with a formatted message.
func NewNumericalErrorf(format string, args ...interface{}) error {
	return &NumericalError{
		Message: fmt.Sprintf(format, args...),
	}
}

// DataFetchError represents a failure of the live market data collaborator.
// Callers fall back to synthetic generation instead of propagating it.
type DataFetchError struct {
	Message string
	Err     error
}

// Error returns the error message string.
func (e *DataFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// NewDataFetchError creates a new DataFetchError wrapping an underlying cause.
func NewDataFetchError(message string, err error) error {
	return &DataFetchError{
		Message: message,
		Err:     err,
	}
}
