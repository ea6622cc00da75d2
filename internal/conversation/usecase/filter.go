package usecase

import (
	"fmt"
	"strings"

	"conversation-srv/internal/conversation"
	"conversation-srv/pkg/util"
)

// validateFilter rejects tag ids that are not positive integers.
func validateFilter(f conversation.Filter) error {
	tags := f.Contacts.Tags
	if len(tags) == 1 && tags[0] == conversation.TagWildcard {
		tags = nil
	}
	if _, err := util.ParseIDs(tags); err != nil {
		return fmt.Errorf("tags %v: %w", f.Contacts.Tags, err)
	}

	for _, t := range f.Contacts.SuppressedTags {
		if _, err := util.ParseID(strings.Replace(t, conversation.SuppressedTagPrefix, "", 1)); err != nil {
			return fmt.Errorf("suppressed tag %q: %w", t, err)
		}
	}
	return nil
}

// parseTexterUserID returns nil for the unassign targets.
func parseTexterUserID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == conversation.UnassignTexterUserID {
		return nil, nil
	}
	id, err := util.ParseID(s)
	if err != nil {
		return nil, conversation.ErrInvalidTexterID
	}
	return &id, nil
}
