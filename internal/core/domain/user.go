package domain

// UserRole defines the role a user holds in the team.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// User represents a team member known to the bot. Rows are managed outside the bot.
type User struct {
	UserID string   `json:"userID"` // Chat platform user id, unique key
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployee reports whether the user holds the employee role.
func (u User) IsEmployee() bool {
	return u.Role == RoleEmployee
}
