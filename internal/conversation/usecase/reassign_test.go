package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"conversation-srv/internal/conversation"
	convMocks "conversation-srv/internal/conversation/mocks"
	"conversation-srv/internal/conversation/repository"
	repoMocks "conversation-srv/internal/conversation/repository/mocks"
	"conversation-srv/internal/model"
	"conversation-srv/pkg/log"
)

func campaignContacts(pairs ...[2]int64) *conversation.CampaignContactIDsMap {
	m := conversation.NewCampaignContactIDsMap()
	for _, p := range pairs {
		m.Add(p[0], p[1])
	}
	return m
}

func TestBuildCampaignContactIDsMap(t *testing.T) {
	m := buildCampaignContactIDsMap([]repository.CampaignContactID{
		{ContactID: 1, CampaignID: 10},
		{ContactID: 1, CampaignID: 10},
		{ContactID: 2, CampaignID: 10},
		{ContactID: 3, CampaignID: 11},
		{ContactID: 1, CampaignID: 10},
	})

	assert.Equal(t, []int64{10, 11}, m.Campaigns())
	assert.Equal(t, []int64{1, 2, 1}, m.Get(10))
	assert.Equal(t, []int64{3}, m.Get(11))
}

func TestGetCampaignIDContactIDsMap(t *testing.T) {
	uc, repo := newTestUseCase(t, Config{})
	f := conversation.Filter{Contacts: conversation.ContactsFilter{MessageStatus: "needsResponse"}}

	repo.On("ListCampaignContactIDs", mock.Anything, repository.ListCampaignContactIDsOptions{OrganizationID: 1, Filter: f}).
		Return([]repository.CampaignContactID{{ContactID: 4, CampaignID: 2}}, nil)

	m, err := uc.GetCampaignIDContactIDsMap(context.Background(), conversation.GetCampaignIDContactIDsMapInput{OrganizationID: 1, Filter: f})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, m.Get(2))
}

func TestReassignConversationsUnassign(t *testing.T) {
	for _, target := range []string{"", "-2"} {
		t.Run("target "+target, func(t *testing.T) {
			repo := repoMocks.NewPostgresRepository(t)
			cache := repoMocks.NewCacheRepository(t)
			uc := New(log.NewNop(), repo, cache, nil, Config{})

			repo.On("UpdateContactsAssignment", mock.Anything, repository.UpdateContactsAssignmentOptions{
				CampaignID: 10,
				ContactIDs: []int64{1, 2, 3},
			}).Return(int64(3), nil).Once()
			for _, id := range []int64{1, 2, 3} {
				cache.On("UpdateAssignmentCache", mock.Anything, id, (*int64)(nil), (*int64)(nil), int64(10)).Return(nil).Once()
			}

			out, err := uc.ReassignConversations(context.Background(), conversation.ReassignInput{
				CampaignContactIDs: campaignContacts([2]int64{10, 1}, [2]int64{10, 2}, [2]int64{10, 3}),
				NewTexterUserID:    target,
			})
			require.NoError(t, err)
			require.NoError(t, out.Err)
			assert.Equal(t, []conversation.ReassignResult{{CampaignID: 10, AssignmentID: nil}}, out.Results)
			assert.Empty(t, out.CacheFailures)
			repo.AssertNotCalled(t, "GetAssignment", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
		})
	}
}

func TestReassignConversationsChunks(t *testing.T) {
	uc, repo := newTestUseCase(t, Config{MaxContactsPerTexter: 0})

	m := conversation.NewCampaignContactIDsMap()
	for id := int64(1); id <= 130000; id++ {
		m.Add(10, id)
	}

	repo.On("GetAssignment", mock.Anything, repository.GetAssignmentOptions{UserID: 7, CampaignID: 10}).
		Return(model.Assignment{}, repository.ErrNotFound).Once()
	repo.On("CreateAssignment", mock.Anything, repository.CreateAssignmentOptions{UserID: 7, CampaignID: 10, MaxContacts: 0}).
		Return(model.Assignment{ID: 55, UserID: 7, CampaignID: 10}, nil).Once()
	repo.On("UpdateContactsAssignment", mock.Anything, mock.MatchedBy(func(opt repository.UpdateContactsAssignmentOptions) bool {
		return opt.CampaignID == 10 && len(opt.ContactIDs) == conversation.MaxContactsPerUpdate &&
			opt.AssignmentID != nil && *opt.AssignmentID == 55
	})).Return(int64(conversation.MaxContactsPerUpdate), nil).Times(2)

	out, err := uc.ReassignConversations(context.Background(), conversation.ReassignInput{
		CampaignContactIDs: m,
		NewTexterUserID:    "7",
	})
	require.NoError(t, err)
	require.NoError(t, out.Err)
	require.Len(t, out.Results, 2)
	for _, res := range out.Results {
		assert.Equal(t, int64(10), res.CampaignID)
		require.NotNil(t, res.AssignmentID)
		assert.Equal(t, int64(55), *res.AssignmentID)
	}
}

func TestReassignConversationsReusesAssignment(t *testing.T) {
	repo := repoMocks.NewPostgresRepository(t)
	producer := convMocks.NewProducer(t)
	uc := New(log.NewNop(), repo, nil, producer, Config{})

	repo.On("GetAssignment", mock.Anything, repository.GetAssignmentOptions{UserID: 7, CampaignID: 10}).
		Return(model.Assignment{ID: 20, UserID: 7, CampaignID: 10}, nil).Once()
	repo.On("GetAssignment", mock.Anything, repository.GetAssignmentOptions{UserID: 7, CampaignID: 11}).
		Return(model.Assignment{ID: 21, UserID: 7, CampaignID: 11}, nil).Once()
	repo.On("UpdateContactsAssignment", mock.Anything, mock.Anything).Return(int64(1), nil).Times(2)
	producer.On("PublishReassigned", mock.Anything, mock.MatchedBy(func(evt conversation.ReassignedEvent) bool {
		return evt.OrganizationID == 1 && evt.EventID != "" && evt.TexterUserID != nil && *evt.TexterUserID == 7
	})).Return(errors.New("broker down")).Times(2)

	out, err := uc.ReassignConversations(context.Background(), conversation.ReassignInput{
		OrganizationID:     1,
		CampaignContactIDs: campaignContacts([2]int64{10, 1}, [2]int64{11, 2}),
		NewTexterUserID:    "7",
	})
	require.NoError(t, err)
	require.NoError(t, out.Err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, int64(20), *out.Results[0].AssignmentID)
	assert.Equal(t, int64(21), *out.Results[1].AssignmentID)
	repo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
}

func TestReassignConversationsPartial(t *testing.T) {
	ctx := context.Background()

	t.Run("update failure keeps earlier results", func(t *testing.T) {
		uc, repo := newTestUseCase(t, Config{})

		repo.On("UpdateContactsAssignment", mock.Anything, mock.MatchedBy(func(opt repository.UpdateContactsAssignmentOptions) bool {
			return opt.CampaignID == 10
		})).Return(int64(1), nil).Once()
		repo.On("UpdateContactsAssignment", mock.Anything, mock.MatchedBy(func(opt repository.UpdateContactsAssignmentOptions) bool {
			return opt.CampaignID == 11
		})).Return(int64(0), errors.New("deadlock")).Once()

		out, err := uc.ReassignConversations(ctx, conversation.ReassignInput{
			CampaignContactIDs: campaignContacts([2]int64{10, 1}, [2]int64{11, 2}, [2]int64{12, 3}),
			NewTexterUserID:    "-2",
		})
		require.NoError(t, err)
		assert.ErrorIs(t, out.Err, conversation.ErrQueryFailed)
		assert.Equal(t, []conversation.ReassignResult{{CampaignID: 10}}, out.Results)
	})

	t.Run("cache failure stops processing", func(t *testing.T) {
		repo := repoMocks.NewPostgresRepository(t)
		cache := repoMocks.NewCacheRepository(t)
		uc := New(log.NewNop(), repo, cache, nil, Config{})

		repo.On("UpdateContactsAssignment", mock.Anything, mock.Anything).Return(int64(3), nil).Once()
		cache.On("UpdateAssignmentCache", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(10)).Return(nil).Once()
		cache.On("UpdateAssignmentCache", mock.Anything, int64(2), mock.Anything, mock.Anything, int64(10)).Return(errors.New("timeout")).Once()
		cache.On("UpdateAssignmentCache", mock.Anything, int64(3), mock.Anything, mock.Anything, int64(10)).Return(nil).Once()

		out, err := uc.ReassignConversations(ctx, conversation.ReassignInput{
			CampaignContactIDs: campaignContacts([2]int64{10, 1}, [2]int64{10, 2}, [2]int64{10, 3}, [2]int64{11, 4}),
			NewTexterUserID:    "",
		})
		require.NoError(t, err)
		assert.ErrorIs(t, out.Err, conversation.ErrCacheUpdateFailed)
		assert.Empty(t, out.Results)
		require.Len(t, out.CacheFailures, 1)
		assert.Equal(t, int64(2), out.CacheFailures[0].ContactID)
		assert.Equal(t, int64(10), out.CacheFailures[0].CampaignID)
	})

	t.Run("assignment failure", func(t *testing.T) {
		uc, repo := newTestUseCase(t, Config{})
		repo.On("GetAssignment", mock.Anything, mock.Anything).Return(model.Assignment{}, errors.New("boom")).Once()

		out, err := uc.ReassignConversations(ctx, conversation.ReassignInput{
			CampaignContactIDs: campaignContacts([2]int64{10, 1}),
			NewTexterUserID:    "7",
		})
		require.NoError(t, err)
		assert.ErrorIs(t, out.Err, conversation.ErrAssignmentFailed)
		assert.Empty(t, out.Results)
		repo.AssertNotCalled(t, "UpdateContactsAssignment", mock.Anything, mock.Anything)
	})
}

func TestReassignConversationsInvalidTexter(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})

	for _, target := range []string{"abc", "0", "-1"} {
		_, err := uc.ReassignConversations(context.Background(), conversation.ReassignInput{
			CampaignContactIDs: campaignContacts([2]int64{10, 1}),
			NewTexterUserID:    target,
		})
		assert.ErrorIs(t, err, conversation.ErrInvalidTexterID)
	}
}

func TestReassignConversationsEmpty(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{})

	out, err := uc.ReassignConversations(context.Background(), conversation.ReassignInput{NewTexterUserID: "7"})
	require.NoError(t, err)
	assert.NoError(t, out.Err)
	assert.Empty(t, out.Results)
}

func TestBulkReassignConversations(t *testing.T) {
	uc, repo := newTestUseCase(t, Config{})

	repo.On("ListCampaignContactIDs", mock.Anything, repository.ListCampaignContactIDsOptions{OrganizationID: 1}).
		Return([]repository.CampaignContactID{{ContactID: 1, CampaignID: 10}, {ContactID: 2, CampaignID: 10}}, nil)
	repo.On("UpdateContactsAssignment", mock.Anything, repository.UpdateContactsAssignmentOptions{
		CampaignID: 10,
		ContactIDs: []int64{1, 2},
	}).Return(int64(2), nil).Once()

	out, err := uc.BulkReassignConversations(context.Background(), conversation.BulkReassignInput{
		OrganizationID:  1,
		NewTexterUserID: "-2",
	})
	require.NoError(t, err)
	require.NoError(t, out.Err)
	assert.Equal(t, []conversation.ReassignResult{{CampaignID: 10}}, out.Results)
}
