package model

import (
	"time"

	"github.com/google/uuid"
)

// Session owns one user's selection and its derived price data. The two are
// always updated together within a single repository update, so a reader never
// observes a selection paired with a stale price.
type Session struct {
	ID        uuid.UUID
	Selection Selection
	Price     PriceData
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Selection: NewSelection(),
		Price:     ZeroPriceData(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
