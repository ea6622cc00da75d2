package usecase

import (
	"context"
	"errors"
	"time"

	"conversation-srv/internal/conversation"
	"conversation-srv/internal/conversation/repository"
	"conversation-srv/internal/model"
	"conversation-srv/pkg/metrics"
	"conversation-srv/pkg/paginator"
)

// GetConversations - One page of conversations with their messages, optional tags and the total count
func (uc *implUseCase) GetConversations(ctx context.Context, ip conversation.GetConversationsInput) (conversation.GetConversationsOutput, error) {
	if ip.OrganizationID <= 0 {
		return conversation.GetConversationsOutput{}, conversation.ErrOrganizationRequired
	}
	if err := validateFilter(ip.Filter); err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.GetConversations: Invalid filter: %v", err)
		return conversation.GetConversationsOutput{}, conversation.ErrInvalidFilter
	}
	ip.Cursor.Adjust()

	startTime := time.Now()

	// Step 1: Scoped contact ids (the page boundary)
	idOpt := repository.ListContactIDsOptions{
		OrganizationID: ip.OrganizationID,
		Filter:         ip.Filter,
	}
	if ip.JustIDQuery {
		q := uc.repo.BuildContactIDsQuery(ctx, idOpt)
		return conversation.GetConversationsOutput{IDQuery: &q}, nil
	}
	if ip.Cursor.IsPaged() {
		idOpt.OrderByIDDesc = !uc.cfg.Recent
		idOpt.Limit = ip.Cursor.Limit
		idOpt.Offset = ip.Cursor.Offset
	}

	ids, err := uc.repo.ListContactIDs(ctx, idOpt)
	metrics.ObserveQuery("ids", time.Since(startTime))
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.GetConversations: Failed to list contact ids: %v", err)
		return conversation.GetConversationsOutput{}, conversation.ErrQueryFailed
	}
	uc.l.Debugf(ctx, "conversation.usecase.GetConversations: org %d: %d contact ids in %s", ip.OrganizationID, len(ids), time.Since(startTime))

	// Step 2: Detail rows, collapsed into conversations
	conversations := []model.Conversation{}
	if len(ids) > 0 {
		detailStart := time.Now()
		rows, err := uc.repo.ListConversationRows(ctx, repository.ListConversationRowsOptions{
			OrganizationID: ip.OrganizationID,
			Filter:         ip.Filter,
			ContactIDs:     ids,
		})
		metrics.ObserveQuery("detail", time.Since(detailStart))
		if err != nil {
			uc.l.Errorf(ctx, "conversation.usecase.GetConversations: Failed to list conversation rows: %v", err)
			return conversation.GetConversationsOutput{}, conversation.ErrQueryFailed
		}
		uc.l.Debugf(ctx, "conversation.usecase.GetConversations: org %d: %d conversation rows in %s", ip.OrganizationID, len(rows), time.Since(startTime))

		conversations, err = collapseConversations(rows, ip.OrganizationID)
		if err != nil {
			uc.l.Errorf(ctx, "conversation.usecase.GetConversations: Failed to collapse rows: %v", err)
			return conversation.GetConversationsOutput{}, conversation.ErrQueryFailed
		}

		// Step 3: Tags
		if ip.IncludeTags {
			tags, err := uc.repo.ListTags(ctx, ids)
			if err != nil {
				uc.l.Errorf(ctx, "conversation.usecase.GetConversations: Failed to list tags: %v", err)
				return conversation.GetConversationsOutput{}, conversation.ErrQueryFailed
			}
			attachTags(conversations, tags)
		}
	}

	// Step 4: Total count, never fatal
	total := uc.countConversations(ctx, ip.OrganizationID, ip.Filter)
	uc.l.Debugf(ctx, "conversation.usecase.GetConversations: org %d: %d conversations, total %d in %s", ip.OrganizationID, len(conversations), total, time.Since(startTime))

	return conversation.GetConversationsOutput{
		Conversations: conversations,
		PageInfo:      paginator.NewPageInfo(ip.Cursor, total),
	}, nil
}

// countConversations returns paginator.UnknownTotal when the count fails or times out.
func (uc *implUseCase) countConversations(ctx context.Context, organizationID int64, filter conversation.Filter) int64 {
	countCtx := ctx
	if uc.cfg.CountTimeout > 0 {
		var cancel context.CancelFunc
		countCtx, cancel = context.WithTimeout(ctx, uc.cfg.CountTimeout)
		defer cancel()
	}

	start := time.Now()
	total, err := uc.repo.CountConversations(countCtx, repository.CountConversationsOptions{
		OrganizationID: organizationID,
		Filter:         filter,
	})
	metrics.ObserveQuery("count", time.Since(start))
	if err != nil {
		metrics.IncCountFallback()
		if errors.Is(err, repository.ErrCountTimeout) {
			uc.l.Warnf(ctx, "conversation.usecase.countConversations: Count timed out after %s: %v", uc.cfg.CountTimeout, err)
		} else {
			uc.l.Warnf(ctx, "conversation.usecase.countConversations: Failed to count: %v", err)
		}
		return paginator.UnknownTotal
	}
	return total
}

// collapseConversations groups detail rows into conversations. A new
// conversation starts whenever the contact id differs from the previous row,
// so rows must arrive grouped by contact. Rows without a message (contacts
// with an empty thread) add no message.
func collapseConversations(rows []model.Row, organizationID int64) ([]model.Conversation, error) {
	conversations := []model.Conversation{}

	var lastID int64
	for i, row := range rows {
		id, _ := row.Int64(model.ColContactID)
		if i == 0 || id != lastID {
			lastID = id
			conversations = append(conversations, model.Conversation{
				Row:            row.Omit(model.MessageColumns),
				Messages:       []model.Message{},
				OrganizationID: organizationID,
			})
		}

		if row[model.ColMessageID] == nil {
			continue
		}
		msg, err := model.NewMessageFromRow(row)
		if err != nil {
			return nil, err
		}
		current := &conversations[len(conversations)-1]
		current.Messages = append(current.Messages, msg)
	}

	return conversations, nil
}

// attachTags sets the tags of every conversation; conversations without tags keep nil.
func attachTags(conversations []model.Conversation, tags []model.Tag) {
	byContact := make(map[int64][]model.Tag)
	for _, tag := range tags {
		byContact[tag.CampaignContactID] = append(byContact[tag.CampaignContactID], tag)
	}
	for i := range conversations {
		conversations[i].Tags = byContact[conversations[i].ContactID()]
	}
}
