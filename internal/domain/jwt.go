package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the iss claim on every access token
const TokenIssuer = "fitkit-auth"

// AccessClaims are the claims carried by a FitKit access token
type AccessClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
