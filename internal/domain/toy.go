package domain

import "time"

// Toy is a catalogue entry with remaining stock.
type Toy struct {
	ID           string
	Name         string
	Category     string
	BuildMinutes int
	Stock        int
	CreatedAt    time.Time
}
