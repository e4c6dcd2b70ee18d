package aicoach

// usage numbers attached to chat responses
type UsageInfo struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
}

// response payload for a chat request; LimitReached denials are still
// HTTP 200 with the explanation in Answer
type ChatResult struct {
	Answer       string    `json:"answer"`
	LimitReached bool      `json:"limit_reached,omitempty"`
	Usage        UsageInfo `json:"usage"`
}

// response payload for a usage query
type UsageResult struct {
	Current int    `json:"current"`
	Limit   int    `json:"limit"`
	Tier    string `json:"tier"`
}
