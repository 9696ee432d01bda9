package domain

import "time"

// Venue is a bookable physical space. Owned by building management; this
// core only reads it.
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Rate      int64     `json:"rate"` // minor units per day
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateVenueInput struct {
	Name     string
	Capacity int
	Rate     int64
	Type     string
}
