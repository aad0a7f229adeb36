package entities

// TasbihState is the counter shown to the user: the current session count
// and the cumulative total across sessions.
type TasbihState struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
}
