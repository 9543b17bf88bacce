package models

import (
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
)

// Group sizes offered by the trip form. The backend accepts any non-empty text.
const (
	GroupSolo   = "Solo"
	GroupCouple = "Pareja"
	GroupSmall  = "Grupo Pequeño"
)

var GroupSizes = []string{GroupSolo, GroupCouple, GroupSmall}

// Trip is a persisted travel plan. ID is assigned by the backend.
type Trip struct {
	ID           *int64            `json:"id,omitempty"`
	Destination  string            `json:"destination"`
	Budget       float64           `json:"budget"`
	TravelStyle  types.TravelStyle `json:"travelStyle"`
	RequiresVisa bool              `json:"requiresVisa"`
	GroupSize    string            `json:"groupSize"`
	StartDate    Date              `json:"startDate"`
}

// IDValue returns the trip id or zero when the trip is not persisted yet.
func (t Trip) IDValue() int64 {
	if t.ID == nil {
		return 0
	}
	return *t.ID
}

// WithID returns a copy of t carrying id.
func (t Trip) WithID(id int64) Trip {
	t.ID = &id
	return t
}

// TripRecord is the stored form of a trip, including server-side fields.
type TripRecord struct {
	Trip
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TripEventType names the messages published on trip changes.
type TripEventType string

const (
	TripCreated TripEventType = "trip.created"
	TripUpdated TripEventType = "trip.updated"
	TripDeleted TripEventType = "trip.deleted"
)

// TripEvent is published after a trip is created, updated or deleted.
type TripEvent struct {
	Type       TripEventType `json:"type"`
	TripID     int64         `json:"trip_id"`
	Trip       *Trip         `json:"trip,omitempty"`
	Username   string        `json:"username,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
