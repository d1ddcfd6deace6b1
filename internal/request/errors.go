package request

import "fmt"

// InvalidTargetValueError reports a target value that is present but not
// usable as a number, identifying the offending year and metric.
type InvalidTargetValueError struct {
	Year   int
	Metric string
	Value  any
}

func (e *InvalidTargetValueError) Error() string {
	return fmt.Sprintf("invalid target value for %s in %d: %v", e.Metric, e.Year, e.Value)
}

// MalformedRequestError reports a request whose structure is missing or
// mistyped. The HTTP layer maps it to a client error status.
type MalformedRequestError struct {
	Field  string
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("malformed request: %s: %s", e.Field, e.Reason)
}
