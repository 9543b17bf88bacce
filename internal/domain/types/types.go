package types

import (
	"fmt"
	"strings"
)

type ServiceMode string

// Trip API - REST backend holding users and trips
// Web UI - browser-facing application that drives the trip API
const (
	TripAPI ServiceMode = "trip-api"
	WebUI   ServiceMode = "web-ui"
)

func (m ServiceMode) String() string {
	return string(m)
}

// TravelStyle describes the budget/service tier of a trip.
type TravelStyle string

const (
	Backpacker TravelStyle = "BACKPACKER"
	Standard   TravelStyle = "STANDARD"
	Luxury     TravelStyle = "LUXURY"
)

// TravelStyles lists every valid style in display order.
var TravelStyles = []TravelStyle{Backpacker, Standard, Luxury}

func (s TravelStyle) String() string {
	return string(s)
}

func (s TravelStyle) IsValid() bool {
	switch s {
	case Backpacker, Standard, Luxury:
		return true
	default:
		return false
	}
}

// ParseTravelStyle accepts any letter case.
func ParseTravelStyle(s string) (TravelStyle, error) {
	style := TravelStyle(strings.ToUpper(strings.TrimSpace(s)))
	if !style.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTravelStyle, s)
	}
	return style, nil
}

// TokenType is the scheme tag returned with a session token.
const TokenType = "Bearer"
