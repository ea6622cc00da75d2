package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"

	repo "conversation-srv/internal/conversation/repository"
	"conversation-srv/internal/model"
)

// GetAssignment - Assignment of a user in a campaign
func (r *implRepository) GetAssignment(ctx context.Context, opt repo.GetAssignmentOptions) (model.Assignment, error) {
	query := `
		SELECT id, user_id, campaign_id, max_contacts
		FROM assignment
		WHERE user_id = $1 AND campaign_id = $2
		LIMIT 1
	`

	var (
		a           model.Assignment
		maxContacts null.Int
	)
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.CampaignID).Scan(
		&a.ID, &a.UserID, &a.CampaignID, &maxContacts,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assignment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Assignment{}, fmt.Errorf("GetAssignment: %w", err)
	}

	a.MaxContacts = maxContacts.Ptr()
	return a, nil
}

// CreateAssignment - Insert an assignment (returns created entity)
func (r *implRepository) CreateAssignment(ctx context.Context, opt repo.CreateAssignmentOptions) (model.Assignment, error) {
	query := `
		INSERT INTO assignment (user_id, campaign_id, max_contacts)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, campaign_id, max_contacts
	`

	var (
		a           model.Assignment
		maxContacts null.Int
	)
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.CampaignID, opt.MaxContacts).Scan(
		&a.ID, &a.UserID, &a.CampaignID, &maxContacts,
	)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("CreateAssignment: %w", err)
	}

	a.MaxContacts = maxContacts.Ptr()
	return a, nil
}
