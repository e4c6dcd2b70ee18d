package ai

// ChatRequest carries one user message for the AI coach. UserID accepts
// either a numeric Strava athlete ID or a Supabase auth UUID.
type ChatRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SummaryRequest asks for a daily training summary
type SummaryRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
}
