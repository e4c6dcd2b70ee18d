package auth

import "github.com/TCUnion/power/tcu/bindings"

// Field names mirror what the deployed frontend sends; the binding requests
// use camelCase for historical reasons and cannot change without breaking it.

// StravaTokenRequest carries the token the frontend obtained from Strava.
// The backend only acknowledges it; token storage lives with the frontend's
// Supabase session.
type StravaTokenRequest struct {
	AthleteID    int64  `json:"athlete_id" binding:"required"`
	AccessToken  string `json:"access_token" binding:"required"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Name         string `json:"name"`
	UserID       string `json:"user_id"`
}

// MemberBindingRequest drives the OTP step of the binding flow
type MemberBindingRequest struct {
	Email      string `json:"email"`
	MemberName string `json:"memberName"`
	StravaID   int64  `json:"stravaId"`
	InputID    string `json:"input_id"`
	Action     string `json:"action" binding:"required"`
}

// MemberBindingResponse mirrors the frontend's expectations
type MemberBindingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConfirmBindingRequest finalizes a binding
type ConfirmBindingRequest struct {
	Email      string `json:"email" binding:"required"`
	StravaID   int64  `json:"stravaId" binding:"required"`
	TCUAccount string `json:"tcu_account"`
	MemberName string `json:"member_name"`
	UserID     string `json:"user_id"`
}

// AuthResponse is returned after a completed OAuth callback
type AuthResponse struct {
	Token    string                  `json:"token"`
	StravaID string                  `json:"strava_id"`
	Name     string                  `json:"name"`
	Binding  *bindings.ResolveResult `json:"binding,omitempty"`
}
