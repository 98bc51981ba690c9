package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is provisioned out-of-band (andesctl user add); the web app only reads it.
type User struct {
	Username string   `gorm:"column:username;primaryKey"`
	Password string   `gorm:"column:password"` // plaintext (legacy rows) or bcrypt hash
	Role     UserRole `gorm:"column:rol"`
}

func (User) TableName() string { return "usuarios" }

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
