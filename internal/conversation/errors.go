package conversation

import "errors"

var (
	ErrOrganizationRequired = errors.New("conversation: organization id is required")
	ErrInvalidFilter        = errors.New("conversation: invalid filter")
	ErrInvalidTexterID      = errors.New("conversation: invalid texter id")
	ErrQueryFailed          = errors.New("conversation: query failed")
	ErrAssignmentFailed     = errors.New("conversation: assignment lookup failed")
	ErrCacheUpdateFailed    = errors.New("conversation: cache update failed")
)
