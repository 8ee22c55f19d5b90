package cache

import "time"

// RefreshMargin is the minimum remaining lifetime of a usable record.
const RefreshMargin = 5 * time.Minute

type Kind string

const (
	KindClient      Kind = "client"
	KindAccess      Kind = "access"
	KindCredentials Kind = "credentials"
)

type Record[T any] struct {
	Payload   T         `json:"payload"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid reports whether the record outlives now by more than RefreshMargin.
// A record exactly at the margin is not valid.
func (r Record[T]) Valid(now time.Time) bool {
	return Fresh(r.ExpiresAt, now)
}

// Fresh applies the refresh margin to a bare expiry.
func Fresh(expiresAt, now time.Time) bool {
	if expiresAt.IsZero() {
		return false
	}
	return expiresAt.Sub(now) > RefreshMargin
}
