package http

import (
	"errors"

	"conversation-srv/internal/conversation"
	pkgErrors "conversation-srv/pkg/errors"
)

var (
	errInvalidOrganizationID = pkgErrors.NewHTTPError(400, "Invalid organization ID")
	errOrganizationRequired  = pkgErrors.NewHTTPError(400, "Organization ID is required")
	errInvalidFilter         = pkgErrors.NewHTTPError(400, "Invalid filter")
	errInvalidTexterID       = pkgErrors.NewHTTPError(400, "Invalid texter user ID")
	errQueryFailed           = pkgErrors.NewHTTPError(500, "Conversation query failed")
	errAssignmentFailed      = pkgErrors.NewHTTPError(500, "Assignment could not be resolved")
	errCacheUpdateFailed     = pkgErrors.NewHTTPError(500, "Contact cache update failed")
	errProjectionFailed      = pkgErrors.NewHTTPError(500, "Conversation could not be rendered")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrOrganizationRequired):
		return errOrganizationRequired
	case errors.Is(err, conversation.ErrInvalidFilter):
		return errInvalidFilter
	case errors.Is(err, conversation.ErrInvalidTexterID):
		return errInvalidTexterID
	case errors.Is(err, conversation.ErrQueryFailed):
		return errQueryFailed
	case errors.Is(err, conversation.ErrAssignmentFailed):
		return errAssignmentFailed
	case errors.Is(err, conversation.ErrCacheUpdateFailed):
		return errCacheUpdateFailed
	default:
		panic(err)
	}
}
