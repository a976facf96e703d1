package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Achievement is a template from the read-only catalog. Each template
// declares exactly one requirement kind with a numeric target.
type Achievement struct {
	bun.BaseModel `bun:"table:achievements,alias:a"`

	ID              string    `bun:"id,pk"`
	Name            string    `bun:"name,notnull"`
	Description     string    `bun:"description"`
	Points          int       `bun:"points,notnull,default:0"`
	RequirementKind string    `bun:"requirement_kind,notnull"`
	RequirementN    int       `bun:"requirement_n,notnull,default:0"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

// UserAchievement is an unlock record. The (user_id, achievement_id) unique
// pair makes grants idempotent upserts.
type UserAchievement struct {
	bun.BaseModel `bun:"table:user_achievements,alias:ua"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull,unique:user_achievement"`
	AchievementID string    `bun:"achievement_id,notnull,unique:user_achievement"`
	UnlockedAt    time.Time `bun:"unlocked_at,notnull,default:current_timestamp"`

	Achievement *Achievement `bun:"rel:belongs-to,join:achievement_id=id"`
}
