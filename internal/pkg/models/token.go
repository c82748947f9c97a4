package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the stored form of a long-lived session credential. Only
// the HMAC of the client-held secret is persisted; the plaintext leaves the
// server exactly once, at issuance.
type RefreshToken struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	AccountID uuid.UUID  `json:"account_id" db:"account_id"`
	TokenHash string     `json:"-" db:"token_hash"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	Revoked   bool       `json:"revoked" db:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
	IssuedIP  string     `json:"issued_ip" db:"issued_ip"`
	UserAgent string     `json:"user_agent" db:"user_agent"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the token's lifetime has lapsed at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Live reports whether the token can still mint access tokens at now.
func (t *RefreshToken) Live(now time.Time) bool {
	return !t.Revoked && !t.IsExpired(now)
}

// AuthSession is the result of a successful login or refresh. RefreshToken
// holds the plaintext secret and is empty on the refresh path, where the
// existing cookie stays valid.
type AuthSession struct {
	AccessToken      string       `json:"access_token"`
	AccessExpiresAt  int64        `json:"access_expires_at"`
	RefreshToken     string       `json:"-"`
	RefreshExpiresAt time.Time    `json:"-"`
	User             *UserProfile `json:"user"`
}
