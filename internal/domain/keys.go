package domain

type contextKey string

// Context keys populated by the auth middleware
const (
	KeyUserID    contextKey = "UserID"
	KeyUserEmail contextKey = "UserEmail"
	KeyUserRole  contextKey = "UserRole"
)
