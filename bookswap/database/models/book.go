package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookReserved  BookStatus = "reserved"
	BookExchanged BookStatus = "exchanged"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID        int64      `bun:"id,pk,autoincrement"`
	OwnerID   int64      `bun:"owner_id,notnull"`
	Title     string     `bun:"title,notnull"`
	Author    string     `bun:"author"`
	Condition string     `bun:"condition"`
	Status    BookStatus `bun:"status,notnull,default:'available'"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:current_timestamp"`

	Owner *User `bun:"rel:belongs-to,join:owner_id=id"`
}
