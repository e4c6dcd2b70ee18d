package health

// RootResponse is the banner returned on the root path
type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ConfigCheck exposes a redacted view of the Supabase configuration so a
// misdeployed instance can be diagnosed without leaking the key
type ConfigCheck struct {
	HasURL    bool   `json:"has_url"`
	URLClean  bool   `json:"url_clean"`
	HasKey    bool   `json:"has_key"`
	KeyLength int    `json:"key_length"`
	KeyMasked string `json:"key_masked"`
	KeySource string `json:"key_source,omitempty"`
}

// Response represents the health check response
type Response struct {
	Status      string      `json:"status"`
	Version     string      `json:"version,omitempty"`
	Timestamp   string      `json:"timestamp"`
	ConfigCheck ConfigCheck `json:"config_check"`
}
