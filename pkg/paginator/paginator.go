package paginator

// IsPaged reports whether the cursor restricts the result set. Both a nil
// cursor and a zero cursor mean "all rows".
func (c *Cursor) IsPaged() bool {
	return c != nil && (c.Limit > 0 || c.Offset > 0)
}

// Adjust clamps the window to sane values. A zero limit with an offset stays
// unlimited.
func (c *Cursor) Adjust() {
	if c == nil {
		return
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Limit < 0 {
		c.Limit = DefaultLimit
	} else if c.Limit > MaxLimit {
		c.Limit = MaxLimit
	}
}

// NewPageInfo builds the page info for a cursor. A nil cursor yields a zero window.
func NewPageInfo(c *Cursor, total int64) PageInfo {
	info := PageInfo{Total: total}
	if c != nil {
		info.Limit = c.Limit
		info.Offset = c.Offset
	}
	return info
}

// IsTotalKnown reports whether Total is a real count.
func (p PageInfo) IsTotalKnown() bool {
	return p.Total != UnknownTotal
}
