package settings

import "context"

// one key/value configuration row from system_settings; values are free
// text, numeric settings are integer strings
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

type Store interface {
	All(ctx context.Context) ([]Setting, error)
	Upsert(ctx context.Context, s Setting) (*Setting, error)
}
