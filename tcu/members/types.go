package members

import "context"

// represents a TCU club-membership record; the schema is owned by the
// membership system, this service only reads it
type Member struct {
	Account  string `json:"account"`
	TCUID    string `json:"tcu_id,omitempty"`
	Email    string `json:"email"`
	RealName string `json:"real_name"`
	Tier     string `json:"tier"`
}

// looks up membership records. Implementations return (nil, nil) when no
// record matches; an error means the lookup itself failed.
type Store interface {
	FindByAccount(ctx context.Context, account string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
}
