package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/validator"
)

// TripRequest is the body of create and update calls.
// Optional pointers distinguish a missing field from its zero value.
// ID is accepted for compatibility and ignored; the path or the server decides it.
type TripRequest struct {
	ID           *int64   `json:"id,omitempty"`
	Destination  string   `json:"destination"`
	Budget       *float64 `json:"budget"`
	TravelStyle  string   `json:"travelStyle"`
	RequiresVisa *bool    `json:"requiresVisa"`
	GroupSize    string   `json:"groupSize"`
	StartDate    string   `json:"startDate"`
}

// ValidateTrip checks req and returns the trip it describes.
// The returned trip is meaningful only when v is valid afterwards.
func ValidateTrip(v *validator.Validator, req *TripRequest) models.Trip {
	var trip models.Trip

	dest := strings.TrimSpace(req.Destination)
	v.Check(dest != "", "destination", "El destino es obligatorio")
	n := utf8.RuneCountInString(dest)
	v.Check(n >= 3 && n <= 255, "destination", "El destino debe tener entre 3 y 255 caracteres")
	trip.Destination = dest

	v.Check(req.Budget != nil, "budget", "El presupuesto es obligatorio")
	if req.Budget != nil {
		v.Check(*req.Budget >= 0, "budget", "El presupuesto no puede ser negativo")
		trip.Budget = *req.Budget
	}

	v.Check(req.TravelStyle != "", "travelStyle", "El estilo de viaje es obligatorio")
	if req.TravelStyle != "" {
		style := types.TravelStyle(strings.ToUpper(strings.TrimSpace(req.TravelStyle)))
		v.Check(validator.PermittedValue(style, types.TravelStyles...), "travelStyle", "El estilo de viaje no es válido")
		trip.TravelStyle = style
	}

	if req.RequiresVisa != nil {
		trip.RequiresVisa = *req.RequiresVisa
	}

	group := strings.TrimSpace(req.GroupSize)
	v.Check(group != "", "groupSize", "El tamaño del grupo es obligatorio")
	trip.GroupSize = group

	v.Check(req.StartDate != "", "startDate", "La fecha de inicio es obligatoria")
	if req.StartDate != "" {
		v.Check(validator.Matches(req.StartDate, validator.DateRX), "startDate", "La fecha debe tener el formato AAAA-MM-DD")
	}
	if req.StartDate != "" && !v.Has("startDate") {
		date, err := models.ParseDate(req.StartDate)
		v.Check(err == nil, "startDate", "La fecha no es válida")
		trip.StartDate = date
	}

	return trip
}
