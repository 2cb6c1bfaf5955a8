package domain

import "time"

type Trip struct {
	ID          string
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     *time.Time
	Status      TripStatus
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayID returns a short identifier for display, truncating the UUID
// to 8 characters.
func (t *Trip) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
