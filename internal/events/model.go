package events

import "time"

// Event is one catalog entry students can register for.
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Level           string    `json:"level"`
	DurationDays    int       `json:"durationDays"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Location        string    `json:"location"`
	Registrations   int       `json:"registrations"`
	MaxParticipants int       `json:"maxParticipants"`
	Prizes          string    `json:"prizes"`
	Organizer       string    `json:"organizer"`
	Contact         string    `json:"contact"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Stats is the catalog-wide rollup.
type Stats struct {
	TotalEvents        int            `json:"totalEvents"`
	TotalRegistrations int            `json:"totalRegistrations"`
	ByType             map[string]int `json:"byType"`
	ByLevel            map[string]int `json:"byLevel"`
}
