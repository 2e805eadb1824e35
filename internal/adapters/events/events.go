package events

import "time"

// DefaultStream is the redis stream account events are appended to.
const DefaultStream = "account.events"

// Event is the envelope written to the stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}
