package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Review struct {
	bun.BaseModel `bun:"table:reviews,alias:rv"`

	ID         int64     `bun:"id,pk,autoincrement"`
	ExchangeID int64     `bun:"exchange_id,notnull"`
	RaterID    int64     `bun:"rater_id,notnull"`
	RatedID    int64     `bun:"rated_id,notnull"`
	Rating     int       `bun:"rating,notnull"`
	Comment    string    `bun:"comment"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
