package app

import "github.com/google/uuid"

// NewSessionID mints the identifier used to correlate one interactive
// session across log lines.
func NewSessionID() string {
	return uuid.NewString()
}
