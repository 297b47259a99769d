package coinbase

import "fmt"

// InvalidResponseError reports an API payload that decoded but is missing
// or malformed in a field we need.
type InvalidResponseError struct {
	Field  string
	Reason string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response: %s: %s", e.Field, e.Reason)
}
