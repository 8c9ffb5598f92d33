package user

import "time"

type Type string

const (
	TypeUser   Type = "USER"
	TypeDancer Type = "DANCER"
)

func ParseType(s string) (Type, bool) {
	t := Type(s)
	return t, t == TypeUser || t == TypeDancer
}

type User struct {
	ID           string    `json:"user_id" gorm:"column:user_id;primaryKey;size:36"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Type         Type      `json:"type" gorm:"size:16;not null;default:USER"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}

func (User) TableName() string { return "users" }

// BlockedToken records a revoked access token jti until it expires.
type BlockedToken struct {
	JTI       string    `gorm:"column:jti;primaryKey;size:255"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (BlockedToken) TableName() string { return "blocked_tokens" }
