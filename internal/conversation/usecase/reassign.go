package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"conversation-srv/internal/conversation"
	"conversation-srv/internal/conversation/repository"
	"conversation-srv/pkg/metrics"
	"conversation-srv/pkg/util"
)

// ReassignConversations - Point the given contacts at the new texter's assignment, chunk by chunk.
//
// Each chunk is one UPDATE statement and is atomic on its own; nothing spans
// chunks. The first failure stops processing and is returned in
// ReassignOutput.Err together with the chunks completed before it. The
// returned error is only set for invalid input.
func (uc *implUseCase) ReassignConversations(ctx context.Context, ip conversation.ReassignInput) (conversation.ReassignOutput, error) {
	texterID, err := parseTexterUserID(ip.NewTexterUserID)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.ReassignConversations: Invalid texter id %q", ip.NewTexterUserID)
		return conversation.ReassignOutput{}, err
	}

	out := conversation.ReassignOutput{Results: []conversation.ReassignResult{}}
	campaigns := ip.CampaignContactIDs.Campaigns()
	if len(campaigns) == 0 {
		return out, nil
	}

	// Step 1: Ensure an assignment per campaign
	assignmentIDs, err := uc.resolveAssignments(ctx, campaigns, texterID)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.ReassignConversations: %v", err)
		out.Err = err
		return out, nil
	}

	// Step 2: Update contacts and their cache entries chunk by chunk
	for _, campaignID := range campaigns {
		assignmentID := assignmentIDs[campaignID]

		for _, chunk := range util.Chunk(ip.CampaignContactIDs.Get(campaignID), conversation.MaxContactsPerUpdate) {
			if _, err := uc.repo.UpdateContactsAssignment(ctx, repository.UpdateContactsAssignmentOptions{
				CampaignID:   campaignID,
				ContactIDs:   chunk,
				AssignmentID: assignmentID,
			}); err != nil {
				uc.l.Errorf(ctx, "conversation.usecase.ReassignConversations: Failed to update campaign %d: %v", campaignID, err)
				out.Err = fmt.Errorf("%w: campaign %d: %v", conversation.ErrQueryFailed, campaignID, err)
				return out, nil
			}

			metrics.AddReassigned(len(chunk))

			if failures := uc.updateAssignmentCache(ctx, campaignID, chunk, assignmentID, texterID); len(failures) > 0 {
				metrics.AddCacheFailures(len(failures))
				uc.l.Errorf(ctx, "conversation.usecase.ReassignConversations: Failed to update cache of %d contacts in campaign %d: %v",
					len(failures), campaignID, failures[0].Err)
				out.CacheFailures = append(out.CacheFailures, failures...)
				out.Err = fmt.Errorf("%w: campaign %d: %d contacts", conversation.ErrCacheUpdateFailed, campaignID, len(failures))
				return out, nil
			}

			out.Results = append(out.Results, conversation.ReassignResult{
				CampaignID:   campaignID,
				AssignmentID: assignmentID,
			})
			uc.publishReassigned(ctx, ip.OrganizationID, campaignID, assignmentID, texterID, chunk)
		}
	}

	return out, nil
}

// BulkReassignConversations - Reassign every contact matching the filter
func (uc *implUseCase) BulkReassignConversations(ctx context.Context, ip conversation.BulkReassignInput) (conversation.ReassignOutput, error) {
	if _, err := parseTexterUserID(ip.NewTexterUserID); err != nil {
		return conversation.ReassignOutput{}, err
	}

	m, err := uc.GetCampaignIDContactIDsMap(ctx, conversation.GetCampaignIDContactIDsMapInput{
		OrganizationID: ip.OrganizationID,
		Filter:         ip.Filter,
	})
	if err != nil {
		return conversation.ReassignOutput{}, err
	}
	uc.l.Infof(ctx, "conversation.usecase.BulkReassignConversations: org %d: reassigning %d contacts in %d campaigns",
		ip.OrganizationID, m.ContactCount(), m.Len())

	return uc.ReassignConversations(ctx, conversation.ReassignInput{
		OrganizationID:     ip.OrganizationID,
		CampaignContactIDs: m,
		NewTexterUserID:    ip.NewTexterUserID,
	})
}

// resolveAssignments finds or creates the texter's assignment in every
// campaign. A nil texterID resolves every campaign to a nil assignment.
func (uc *implUseCase) resolveAssignments(ctx context.Context, campaigns []int64, texterID *int64) (map[int64]*int64, error) {
	assignmentIDs := make(map[int64]*int64, len(campaigns))
	for _, campaignID := range campaigns {
		if _, ok := assignmentIDs[campaignID]; ok {
			continue
		}
		if texterID == nil {
			assignmentIDs[campaignID] = nil
			continue
		}

		a, err := uc.repo.GetAssignment(ctx, repository.GetAssignmentOptions{
			UserID:     *texterID,
			CampaignID: campaignID,
		})
		if errors.Is(err, repository.ErrNotFound) {
			a, err = uc.repo.CreateAssignment(ctx, repository.CreateAssignmentOptions{
				UserID:      *texterID,
				CampaignID:  campaignID,
				MaxContacts: uc.cfg.MaxContactsPerTexter,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("%w: campaign %d: %v", conversation.ErrAssignmentFailed, campaignID, err)
		}

		id := a.ID
		assignmentIDs[campaignID] = &id
	}
	return assignmentIDs, nil
}

// updateAssignmentCache updates the cache entry of every contact of a chunk
// concurrently and waits for all of them. Failures are sorted by contact id.
func (uc *implUseCase) updateAssignmentCache(ctx context.Context, campaignID int64, contactIDs []int64, assignmentID, texterID *int64) []conversation.CacheFailure {
	if uc.cache == nil {
		return nil
	}

	var (
		mu       sync.Mutex
		failures []conversation.CacheFailure
		g        errgroup.Group
	)
	g.SetLimit(uc.cfg.CacheConcurrency)

	for _, contactID := range contactIDs {
		g.Go(func() error {
			if err := uc.cache.UpdateAssignmentCache(ctx, contactID, assignmentID, texterID, campaignID); err != nil {
				mu.Lock()
				failures = append(failures, conversation.CacheFailure{
					ContactID:  contactID,
					CampaignID: campaignID,
					Err:        err,
				})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].ContactID < failures[j].ContactID })
	return failures
}

// publishReassigned is best effort; failures are only logged.
func (uc *implUseCase) publishReassigned(ctx context.Context, organizationID, campaignID int64, assignmentID, texterID *int64, contactIDs []int64) {
	if uc.producer == nil {
		return
	}

	evt := conversation.ReassignedEvent{
		EventID:        uuid.NewString(),
		OrganizationID: organizationID,
		CampaignID:     campaignID,
		AssignmentID:   assignmentID,
		TexterUserID:   texterID,
		ContactIDs:     contactIDs,
		ReassignedAt:   time.Now(),
	}
	if err := uc.producer.PublishReassigned(ctx, evt); err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.publishReassigned: Failed to publish event for campaign %d: %v", campaignID, err)
	}
}
