package models

// User represents a registered account.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
}
