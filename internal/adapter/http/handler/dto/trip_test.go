package dto

import (
	"testing"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValidateTrip_Valid(t *testing.T) {
	v := validator.New()
	trip := ValidateTrip(v, &TripRequest{
		ID:          ptr(int64(9)),
		Destination: "  Barcelona, España ",
		Budget:      ptr(1500.0),
		TravelStyle: "standard",
		GroupSize:   "Solo",
		StartDate:   "2025-06-01",
	})

	assert.True(t, v.Valid(), v.Errors)
	assert.Nil(t, trip.ID)
	assert.Equal(t, "Barcelona, España", trip.Destination)
	assert.Equal(t, types.Standard, trip.TravelStyle)
	assert.False(t, trip.RequiresVisa)
	assert.Equal(t, "2025-06-01", trip.StartDate.String())
}

func TestValidateTrip_Errors(t *testing.T) {
	tests := []struct {
		name  string
		req   TripRequest
		field string
	}{
		{"missing destination", TripRequest{Budget: ptr(1.0), TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "2025-01-01"}, "destination"},
		{"short destination", TripRequest{Destination: "ab", Budget: ptr(1.0), TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "2025-01-01"}, "destination"},
		{"missing budget", TripRequest{Destination: "Lima", TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "2025-01-01"}, "budget"},
		{"negative budget", TripRequest{Destination: "Lima", Budget: ptr(-1.0), TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "2025-01-01"}, "budget"},
		{"bad style", TripRequest{Destination: "Lima", Budget: ptr(1.0), TravelStyle: "CRUISE", GroupSize: "Solo", StartDate: "2025-01-01"}, "travelStyle"},
		{"missing group", TripRequest{Destination: "Lima", Budget: ptr(1.0), TravelStyle: "LUXURY", StartDate: "2025-01-01"}, "groupSize"},
		{"bad date", TripRequest{Destination: "Lima", Budget: ptr(1.0), TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "01/01/2025"}, "startDate"},
		{"impossible date", TripRequest{Destination: "Lima", Budget: ptr(1.0), TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "2025-02-30"}, "startDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateTrip(v, &tt.req)
			assert.False(t, v.Valid())
			assert.True(t, v.Has(tt.field), v.Errors)
			assert.Len(t, v.Errors, 1, v.Errors)
		})
	}
}

func TestValidateTrip_DateMessages(t *testing.T) {
	req := TripRequest{Destination: "Lima", Budget: ptr(1.0), TravelStyle: "LUXURY", GroupSize: "Solo", StartDate: "2025-6-1"}
	v := validator.New()
	ValidateTrip(v, &req)
	assert.Equal(t, "La fecha debe tener el formato AAAA-MM-DD", v.Errors["startDate"])

	req.StartDate = "2025-02-30"
	v = validator.New()
	ValidateTrip(v, &req)
	assert.Equal(t, "La fecha no es válida", v.Errors["startDate"])
}

func TestValidateTrip_ZeroBudgetAllowed(t *testing.T) {
	v := validator.New()
	ValidateTrip(v, &TripRequest{Destination: "Lima", Budget: ptr(0.0), TravelStyle: "BACKPACKER", GroupSize: "Pareja", StartDate: "2025-01-01"})
	assert.True(t, v.Valid(), v.Errors)
}

func TestValidateLogin(t *testing.T) {
	v := validator.New()
	ValidateLogin(v, &LoginRequest{Username: " ", Password: ""})
	assert.True(t, v.Has("username"))
	assert.True(t, v.Has("password"))
}
