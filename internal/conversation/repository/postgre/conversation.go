package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"

	"conversation-srv/internal/conversation"
	repo "conversation-srv/internal/conversation/repository"
	"conversation-srv/internal/model"
)

// pgQueryCanceled is the SQLSTATE of a statement cancelled by request or timeout.
const pgQueryCanceled = "57014"

// BuildContactIDsQuery - Build the scoped-ids query without running it
func (r *implRepository) BuildContactIDsQuery(ctx context.Context, opt repo.ListContactIDsOptions) conversation.Query {
	sql, args := toSQL(r.buildContactIDsQuery(opt))
	return conversation.Query{SQL: sql, Args: args}
}

// ListContactIDs - Scoped contact ids on the read replica
func (r *implRepository) ListContactIDs(ctx context.Context, opt repo.ListContactIDsOptions) ([]int64, error) {
	query, args := toSQL(r.buildContactIDsQuery(opt))
	r.l.Debugf(ctx, "conversation.repository.postgre.ListContactIDs: %s", query)

	rows, err := r.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListContactIDs: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListContactIDs scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContactIDs: %w", err)
	}

	return ids, nil
}

// ListConversationRows - Detail rows, one per message (or one per contact without messages)
func (r *implRepository) ListConversationRows(ctx context.Context, opt repo.ListConversationRowsOptions) ([]model.Row, error) {
	if len(opt.ContactIDs) == 0 {
		return nil, nil
	}

	query, args := toSQL(r.buildConversationRowsQuery(opt))
	rows, err := r.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListConversationRows: %w", err)
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ListConversationRows scan: %w", err)
	}
	return out, nil
}

// ListTags - Tags attached to the given contacts
func (r *implRepository) ListTags(ctx context.Context, contactIDs []int64) ([]model.Tag, error) {
	if len(contactIDs) == 0 {
		return nil, nil
	}

	query, args := toSQL(r.buildTagsQuery(contactIDs))
	rows, err := r.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var (
			tag   model.Tag
			value null.String
		)
		if err := rows.Scan(&tag.CampaignContactID, &tag.Name, &tag.ID, &value); err != nil {
			return nil, fmt.Errorf("ListTags scan: %w", err)
		}
		tag.Value = value.Ptr()
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}

	return tags, nil
}

// CountConversations - Distinct contacts matching the filter. Cancellation of
// ctx cancels the statement server side.
func (r *implRepository) CountConversations(ctx context.Context, opt repo.CountConversationsOptions) (int64, error) {
	query, args := toSQL(r.buildCountQuery(opt))

	var total int64
	if err := r.readDB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		if isCanceled(ctx, err) {
			return 0, fmt.Errorf("CountConversations: %w: %v", repo.ErrCountTimeout, err)
		}
		return 0, fmt.Errorf("CountConversations: %w", err)
	}

	return total, nil
}

// ListCampaignContactIDs - Contact and campaign ids ordered by contact id, on the primary
func (r *implRepository) ListCampaignContactIDs(ctx context.Context, opt repo.ListCampaignContactIDsOptions) ([]repo.CampaignContactID, error) {
	query, args := toSQL(r.buildCampaignContactIDsQuery(opt))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListCampaignContactIDs: %w", err)
	}
	defer rows.Close()

	var out []repo.CampaignContactID
	for rows.Next() {
		var row repo.CampaignContactID
		if err := rows.Scan(&row.ContactID, &row.CampaignID); err != nil {
			return nil, fmt.Errorf("ListCampaignContactIDs scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCampaignContactIDs: %w", err)
	}

	return out, nil
}

// UpdateContactsAssignment - Point contacts of one campaign at an assignment in a single statement
func (r *implRepository) UpdateContactsAssignment(ctx context.Context, opt repo.UpdateContactsAssignmentOptions) (int64, error) {
	if len(opt.ContactIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE campaign_contact
		SET assignment_id = $1
		WHERE campaign_id = $2 AND id = ANY($3)
	`

	res, err := r.db.ExecContext(ctx, query,
		null.Int64FromPtr(opt.AssignmentID), opt.CampaignID, pq.Int64Array(opt.ContactIDs),
	)
	if err != nil {
		return 0, fmt.Errorf("UpdateContactsAssignment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("UpdateContactsAssignment rows affected: %w", err)
	}
	return n, nil
}

func isCanceled(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgQueryCanceled
}
