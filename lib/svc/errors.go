package svc

import "fmt"

// ErrProtocolExtraction is returned when a protocol cannot be extracted from
// a request or response.
type ErrProtocolExtraction struct {
	Protocol string
}

func (e ErrProtocolExtraction) Error() string {
	return fmt.Sprintf(
		"Impossible to extract protocol: %s", e.Protocol)
}
