package conversation

const (
	// UnassignedTexterID in AssignmentsFilter.TexterID selects contacts without an assignment.
	UnassignedTexterID int64 = -2
	// UnassignTexterUserID as the reassignment target clears the assignment.
	UnassignTexterUserID = "-2"

	// MessageStatusNeedsMessageOrResponse expands to needsResponse and needsMessage.
	MessageStatusNeedsMessageOrResponse = "needsMessageOrResponse"

	// TagWildcard as the only tag selects contacts having any tag.
	TagWildcard = "*"
	// SuppressedTagPrefix is stripped from suppressed tag ids.
	SuppressedTagPrefix = "s_"

	// MaxContactsPerUpdate bounds the contact ids bound into one UPDATE.
	// Postgres prepared statements accept at most 65535 parameters.
	MaxContactsPerUpdate = 65000
	// MaxCacheConcurrency bounds concurrent cache updates within a chunk.
	MaxCacheConcurrency = 50

	// EventTypeReassigned is the event type published per reassigned chunk.
	EventTypeReassigned = "conversation.reassigned"
)
