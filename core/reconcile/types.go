package reconcile

import (
	"context"

	"room-finder/core/room"
)

// Source loads one side of a comparison.
type Source interface {
	// Name labels the source in reports (e.g. "database", "storage").
	Name() string
	// Load returns every room the source holds, available or not.
	Load(ctx context.Context) ([]room.Room, error)
}

// Result describes a single room location that differs between the two sources.
type Result struct {
	// Key is the location key, see Key.
	Key string `json:"key"`

	Hotel  string `json:"hotel"`
	Floor  int    `json:"floor"`
	Number int    `json:"number"`

	// LeftPresent and RightPresent tell which sources hold the location.
	LeftPresent  bool `json:"left_present"`
	RightPresent bool `json:"right_present"`

	// Mismatch lists field differences, e.g. "price: database=25.8 storage=26".
	Mismatch []string `json:"mismatch"`
}

// Summary provides aggregate counts.
type Summary struct {
	// TotalRooms is the number of distinct locations across both sources.
	TotalRooms int `json:"total_rooms"`
	// MissingLeft counts locations only the right source holds.
	MissingLeft int `json:"missing_left"`
	// MissingRight counts locations only the left source holds.
	MissingRight int `json:"missing_right"`
	// Mismatches counts locations whose fields differ.
	Mismatches int `json:"mismatches"`
}

// Report is the outcome of Compare. Results only holds locations with differences.
type Report struct {
	Left    string   `json:"left"`
	Right   string   `json:"right"`
	InSync  bool     `json:"in_sync"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}
