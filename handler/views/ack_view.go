package views

// Ack answer to a state changing request
type Ack struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Action  string `json:"action"`
	Asset   string `json:"asset,omitempty"`
}

// Done ack of an action applied to the pool
func Done(action, assetID string) Ack {
	return Ack{
		Code:    0,
		Message: "success",
		Action:  action,
		Asset:   assetID,
	}
}
