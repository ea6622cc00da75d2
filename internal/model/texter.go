package model

// Texter is the user assigned to message a contact. ID is nil when the
// contact is unassigned.
type Texter struct {
	ID        *int64 `mapstructure:"id"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	Role      string `mapstructure:"role"`
}
