package websocket

import "time"

// Message types pushed to connected dashboards.
const (
	// Something changed in the approval queue; clients re-fetch the
	// pending count.
	TypeRequestUpdate = "request-update"
)

// Envelope wraps every outgoing message so clients can dispatch on Type.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
