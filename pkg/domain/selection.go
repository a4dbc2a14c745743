package domain

import "time"

// HistoryLimit is the number of recent selections retained, two weeks of lunches
const HistoryLimit = 14

// Selection is a single recorded roll result.
// Name is a soft reference and may point to a deleted restaurant.
type Selection struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SelectedAt time.Time `json:"selected_at"`
}
