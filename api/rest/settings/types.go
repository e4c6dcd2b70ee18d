package settings

import tcusettings "github.com/TCUnion/power/tcu/settings"

// UpdateRequest batches setting writes
type UpdateRequest struct {
	Settings []tcusettings.Setting `json:"settings" binding:"required,min=1"`
}
