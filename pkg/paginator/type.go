package paginator

// Cursor is a limit/offset window. A nil *Cursor means no paging at all.
type Cursor struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// PageInfo describes the page that was returned.
type PageInfo struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"` // UnknownTotal when the count query failed
}
