package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorIsPaged(t *testing.T) {
	var nilCursor *Cursor
	assert.False(t, nilCursor.IsPaged())
	assert.False(t, (&Cursor{}).IsPaged())
	assert.True(t, (&Cursor{Limit: 10}).IsPaged())
	assert.True(t, (&Cursor{Offset: 20}).IsPaged())
}

func TestCursorAdjust(t *testing.T) {
	c := &Cursor{Limit: -1, Offset: -5}
	c.Adjust()
	assert.Equal(t, DefaultLimit, c.Limit)
	assert.Equal(t, 0, c.Offset)

	c = &Cursor{Limit: MaxLimit + 1}
	c.Adjust()
	assert.Equal(t, MaxLimit, c.Limit)

	c = &Cursor{Offset: 30}
	c.Adjust()
	assert.Equal(t, 0, c.Limit)
	assert.Equal(t, 30, c.Offset)
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(&Cursor{Limit: 25, Offset: 50}, 120)
	assert.Equal(t, PageInfo{Limit: 25, Offset: 50, Total: 120}, info)
	assert.True(t, info.IsTotalKnown())

	info = NewPageInfo(nil, UnknownTotal)
	assert.Equal(t, PageInfo{Total: UnknownTotal}, info)
	assert.False(t, info.IsTotalKnown())
}
