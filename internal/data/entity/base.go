package entity

import (
	"time"
)

// Base holds the store-generated columns shared by every record.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
