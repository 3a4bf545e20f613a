package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is keyed by a surrogate id; ChatId is the stable identifier supplied
// by the chat transport on every inbound event.
type User struct {
	Id           uuid.UUID
	ChatId       int64
	Username     *string
	FirstName    *string
	LastName     *string
	Phone        *string
	CreatedAt    time.Time
	LastActiveAt *time.Time
}

// Verified reports whether the one-time phone disclosure has been recorded.
func (u *User) Verified() bool {
	return u.Phone != nil && *u.Phone != ""
}
