package contextkeys

type contextKey string

const (
	UserIDKey    contextKey = "UserID"
	UsernameKey  contextKey = "Username"
	UserRoleKey  contextKey = "UserRole"
	RequestIDKey contextKey = "RequestID"
)
