package models

// Counter persists a named monotonically increasing counter, used for
// assigning CHAT<n> ids to chat-submitted meals.
type Counter struct {
	Name  string `gorm:"primaryKey;size:32"`
	Value int
}
