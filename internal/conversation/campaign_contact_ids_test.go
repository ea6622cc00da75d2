package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignContactIDsMap(t *testing.T) {
	var m CampaignContactIDsMap
	m.Add(9, 1)
	m.Add(4, 2)
	m.Add(9, 3)

	assert.Equal(t, []int64{9, 4}, m.Campaigns())
	assert.Equal(t, []int64{1, 3}, m.Get(9))
	assert.Equal(t, []int64{2}, m.Get(4))
	assert.Nil(t, m.Get(5))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, m.ContactCount())

	var nilMap *CampaignContactIDsMap
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Campaigns())
}

func TestAssignmentsFilter(t *testing.T) {
	zero := int64(0)
	texter := int64(7)

	assert.False(t, AssignmentsFilter{}.HasTexter())
	assert.False(t, AssignmentsFilter{TexterID: &zero}.HasTexter())
	assert.True(t, AssignmentsFilter{TexterID: &texter}.ByAssignment())
	assert.False(t, AssignmentsFilter{TexterID: &texter, Sender: true}.ByAssignment())
	assert.True(t, AssignmentsFilter{TexterID: &texter, Sender: true}.BySender())
	assert.False(t, AssignmentsFilter{Sender: true}.BySender())
}
