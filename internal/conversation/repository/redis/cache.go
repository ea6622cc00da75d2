package redis

import (
	"context"
	"encoding/json"
	"fmt"

	repo "conversation-srv/internal/conversation/repository"
	"conversation-srv/pkg/redis"
)

// UpdateAssignmentCache rewrites the assignment of a cached campaign contact.
// Contacts that are not cached are left alone; the next read loads them fresh.
func (r *implCacheRepository) UpdateAssignmentCache(ctx context.Context, contactID int64, assignmentID *int64, texterID *int64, campaignID int64) error {
	key := campaignContactCacheKey(contactID)

	data, err := r.redis.Get(ctx, key)
	if redis.IsNil(err) {
		return nil
	}
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.UpdateAssignmentCache: Failed to get contact %d from cache: %v", contactID, err)
		return fmt.Errorf("%w: %v", repo.ErrCacheUnavailable, err)
	}

	entry := map[string]interface{}{}
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		// Drop the entry so it gets reloaded instead of serving a stale assignment.
		r.l.Warnf(ctx, "conversation.repository.redis.UpdateAssignmentCache: Invalid cache entry for contact %d: %v", contactID, err)
		if err := r.redis.Delete(ctx, key); err != nil {
			return fmt.Errorf("%w: %v", repo.ErrCacheUnavailable, err)
		}
		return nil
	}

	entry["assignment_id"] = assignmentID
	entry["user_id"] = texterID
	entry["campaign_id"] = campaignID

	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrInvalidCacheEntry, err)
	}

	written, err := r.redis.SetExisting(ctx, key, string(body))
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.UpdateAssignmentCache: Failed to set contact %d in cache: %v", contactID, err)
		return fmt.Errorf("%w: %v", repo.ErrCacheUnavailable, err)
	}
	if !written {
		r.l.Debugf(ctx, "conversation.repository.redis.UpdateAssignmentCache: Contact %d left the cache during the update", contactID)
	}
	return nil
}

// campaignContactCacheKey is the key of a cached campaign contact.
func campaignContactCacheKey(contactID int64) string {
	return fmt.Sprintf("campaign_contact:%d", contactID)
}
