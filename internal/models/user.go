package models

// User is the database row shape for a user.
type User struct {
	UserID       string
	Username     string
	PasswordHash string
	AuditFields
}
