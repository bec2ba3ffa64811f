package extractor

import "fmt"

// ValidationError marks a model reply that was received but could not
// be used: not JSON, wrong shape, or missing required fields. It is
// distinct from transport errors so callers can tell a flaky network
// from a misbehaving model.
type ValidationError struct {
	Iteration int
	Reason    string
	Raw       string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid model output on call %d: %s", e.Iteration, e.Reason)
}
