package domain

// User represents a user of the system. Username is unique; saving under an
// existing username replaces the stored credentials (overwrite-on-save).
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}
