package usecase

import (
	"context"

	"conversation-srv/internal/conversation"
	"conversation-srv/internal/conversation/repository"
)

// GetCampaignIDContactIDsMap - Contacts matching the filter grouped by campaign, read from the primary
func (uc *implUseCase) GetCampaignIDContactIDsMap(ctx context.Context, ip conversation.GetCampaignIDContactIDsMapInput) (*conversation.CampaignContactIDsMap, error) {
	if ip.OrganizationID <= 0 {
		return nil, conversation.ErrOrganizationRequired
	}
	if err := validateFilter(ip.Filter); err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.GetCampaignIDContactIDsMap: Invalid filter: %v", err)
		return nil, conversation.ErrInvalidFilter
	}

	rows, err := uc.repo.ListCampaignContactIDs(ctx, repository.ListCampaignContactIDsOptions{
		OrganizationID: ip.OrganizationID,
		Filter:         ip.Filter,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.GetCampaignIDContactIDsMap: Failed to list campaign contact ids: %v", err)
		return nil, conversation.ErrQueryFailed
	}

	return buildCampaignContactIDsMap(rows), nil
}

// buildCampaignContactIDsMap drops a row only when its contact id repeats
// the previous row's. Non-adjacent repeats are kept.
func buildCampaignContactIDsMap(rows []repository.CampaignContactID) *conversation.CampaignContactIDsMap {
	m := conversation.NewCampaignContactIDsMap()

	var lastID int64
	for i, row := range rows {
		if i > 0 && row.ContactID == lastID {
			continue
		}
		lastID = row.ContactID
		m.Add(row.CampaignID, row.ContactID)
	}
	return m
}
