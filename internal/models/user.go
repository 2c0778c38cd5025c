package models

// Role enum
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// AdminUsername is the reserved account name that carries the admin role.
const AdminUsername = "admin"

// User represents a login account. The role is not persisted; it is derived
// from the username at authentication time.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"` // Never send password in JSON
}

// TableName preserves the legacy table name.
func (User) TableName() string {
	return "users"
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// CheckPassword compares a password with the user's stored password.
// Passwords are stored and compared in clear text for compatibility with the
// existing hospital.db data files. Do not reuse this outside a local,
// single-operator deployment.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

// RoleOf derives the role tier for a username. Only the reserved admin
// account gets the admin role.
func RoleOf(username string) Role {
	if username == AdminUsername {
		return RoleAdmin
	}
	return RoleUser
}

// Sanitize creates a UserSanitized struct from a User model, excluding the password.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:       u.ID,
		Username: u.Username,
		Role:     RoleOf(u.Username),
	}
}
