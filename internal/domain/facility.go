package domain

import "time"

// Represents a named, categorized point of interest within the airport,
// stored as a single relational record. Coordinates are kept as the raw
// "<lat>, <lng>" string from the table; navigation consumers parse it via
// ParseCoordinates and reject malformed values at read time.
type Facility struct {
	ID          int64
	Name        string
	Category    string
	Coordinates string
	Description string
	CreatedAt   time.Time
}

// CreatedAtDisplay renders the creation time in the 12-hour clock form used
// in API responses and notification emails.
func (f *Facility) CreatedAtDisplay() string {
	if f.CreatedAt.IsZero() {
		return ""
	}
	return f.CreatedAt.Format("03:04 PM")
}
