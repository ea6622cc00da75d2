package kafka

// Headers
const (
	HeaderEventType = "event_type"
)
