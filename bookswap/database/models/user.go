package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Username  string    `bun:"username,notnull,unique"`
	Email     string    `bun:"email,notnull,unique"`
	Bio       string    `bun:"bio"`
	Location  string    `bun:"location"`
	AvatarURL string    `bun:"avatar_url"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Login streak tracking, updated by the auth layer on each login.
	LoginStreakDays int       `bun:"login_streak_days,notnull,default:0"`
	LastLoginAt     time.Time `bun:"last_login_at"`
}

// ProfileComplete reports whether every profile field the activity scorer
// checks is filled in.
func (u *User) ProfileComplete() bool {
	return u.Bio != "" && u.Location != "" && u.AvatarURL != "" && u.Username != ""
}
