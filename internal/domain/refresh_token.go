package domain

import (
	"context"
	"time"
)

// RefreshToken is a stored session. Only the SHA-256 of the opaque token
// is persisted.
type RefreshToken struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	TokenHash string    `bson:"token_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UserAgent string    `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	IPAddress string    `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	Revoked   bool      `bson:"revoked" json:"revoked"`
}

// Usable reports whether the session can still be exchanged at now
func (r *RefreshToken) Usable(now time.Time) bool {
	return !r.Revoked && now.Before(r.ExpiresAt)
}

// RefreshTokenRepository persists refresh sessions
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByHash(ctx context.Context, hash string) (*RefreshToken, error)
	RevokeByHash(ctx context.Context, hash string) error
	// RevokeAllByUserID ends every session of the user
	RevokeAllByUserID(ctx context.Context, userID string) error
}

// TokenPair is returned on login, register and refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // seconds
}
