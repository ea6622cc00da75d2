package model

import "time"

// Campaign is the campaign a contact belongs to.
type Campaign struct {
	ID    int64      `mapstructure:"id"`
	Title string     `mapstructure:"title"`
	DueBy *time.Time `mapstructure:"due_by"`
}
