package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Username            string     `gorm:"uniqueIndex;not null" json:"username"`
	Password            string     `gorm:"column:hashed_password;not null" json:"-"`
	IsActive            bool       `gorm:"not null" json:"is_active"`
	IsAdmin             bool       `gorm:"default:false" json:"is_admin"`
	CanCreateNews       bool       `gorm:"default:false" json:"can_create_news"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
}

// MayCreateNews reports whether the user is allowed to publish news items.
func (u *User) MayCreateNews() bool {
	return u.IsAdmin || u.CanCreateNews
}

// CanManage reports whether the user may read or modify the account with the given ID.
func (u *User) CanManage(userID uint) bool {
	return u.IsAdmin || u.ID == userID
}
