package upstream

import "fmt"

// Error reports a failed upstream call: a non-success HTTP status, a
// transport failure, or a structurally unexpected response body.
//
// Handlers surface it as a 502-class response with the upstream status
// embedded. Fetches that fail with an Error are never cached.
type Error struct {
	StatusCode int    // HTTP status observed on the upstream call
	Reason     string // optional detail (provider error description, decode failure)
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("upstream error (status %d)", e.StatusCode)
}
