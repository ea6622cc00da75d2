package conversation

// CampaignContactIDsMap maps campaign ids to contact ids, both kept in
// insertion order. The zero value is ready to use.
type CampaignContactIDsMap struct {
	order    []int64
	contacts map[int64][]int64
}

// NewCampaignContactIDsMap returns an empty map.
func NewCampaignContactIDsMap() *CampaignContactIDsMap {
	return &CampaignContactIDsMap{contacts: make(map[int64][]int64)}
}

// Add appends contactID to the list of campaignID.
func (m *CampaignContactIDsMap) Add(campaignID, contactID int64) {
	if m.contacts == nil {
		m.contacts = make(map[int64][]int64)
	}
	ids, ok := m.contacts[campaignID]
	if !ok {
		m.order = append(m.order, campaignID)
	}
	m.contacts[campaignID] = append(ids, contactID)
}

// Get returns the contact ids of campaignID.
func (m *CampaignContactIDsMap) Get(campaignID int64) []int64 {
	if m == nil {
		return nil
	}
	return m.contacts[campaignID]
}

// Campaigns returns campaign ids in first-seen order.
func (m *CampaignContactIDsMap) Campaigns() []int64 {
	if m == nil {
		return nil
	}
	return m.order
}

// Len returns the number of campaigns.
func (m *CampaignContactIDsMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// ContactCount returns the number of contact ids across campaigns.
func (m *CampaignContactIDsMap) ContactCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, ids := range m.contacts {
		n += len(ids)
	}
	return n
}
