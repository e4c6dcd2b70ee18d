package auth

import "github.com/golang-jwt/jwt/v5"

// JWT claims for an authenticated athlete session
type Claims struct {
	StravaID string `json:"strava_id"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
