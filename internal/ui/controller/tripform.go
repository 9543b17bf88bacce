package controller

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/validator"
)

// Form field names, shared with the rendering layer.
const (
	FieldDestination  = "destination"
	FieldStartDate    = "startDate"
	FieldBudget       = "budget"
	FieldTravelStyle  = "travelStyle"
	FieldGroupSize    = "groupSize"
	FieldRequiresVisa = "requiresVisa"
)

var requiredFields = []string{FieldDestination, FieldStartDate, FieldBudget, FieldTravelStyle, FieldGroupSize}

// TripFormState holds raw field values as typed by the user.
type TripFormState struct {
	EditMode bool
	TripID   int64

	Destination  string
	StartDate    string
	Budget       string
	TravelStyle  string
	GroupSize    string
	RequiresVisa bool

	Loading bool
	Error   string
	// Errors holds messages for touched invalid fields only.
	Errors map[string]string
}

// TripForm serves both trip creation and edition.
type TripForm struct {
	state   TripFormState
	idParam string
	touched map[string]bool

	trips TripAPI
	nav   Navigator
	log   logger.Logger
}

// NewTripForm builds a form in edit mode when idParam is not empty.
func NewTripForm(trips TripAPI, nav Navigator, log logger.Logger, idParam string) *TripForm {
	return &TripForm{
		state: TripFormState{
			EditMode:  idParam != "",
			GroupSize: models.GroupSolo,
		},
		idParam: idParam,
		touched: make(map[string]bool),
		trips:   trips,
		nav:     nav,
		log:     log,
	}
}

func (c *TripForm) State() TripFormState {
	s := c.state
	s.Errors = c.FieldErrors()
	return s
}

// Init loads the trip in edit mode. Any failure goes back to the list.
// Prepare resolves the trip being edited from the id parameter without
// fetching it. An invalid id navigates back to the list.
func (c *TripForm) Prepare(ctx context.Context) error {
	if !c.state.EditMode {
		return nil
	}

	id, err := strconv.ParseInt(c.idParam, 10, 64)
	if err != nil || id <= 0 {
		err = fmt.Errorf("invalid trip id %q", c.idParam)
		c.log.Warn(wrap.WithAction(ctx, "load_trip_form"), "failed to load trip", "error", err.Error())
		c.nav.Navigate(router.PathTrips)
		return err
	}
	c.state.TripID = id
	return nil
}

func (c *TripForm) Init(ctx context.Context) error {
	if !c.state.EditMode {
		return nil
	}
	if err := c.Prepare(ctx); err != nil {
		return err
	}
	ctx = wrap.WithTripID(wrap.WithAction(ctx, "load_trip_form"), c.idParam)

	trip, err := c.trips.Get(ctx, c.state.TripID)
	if err != nil {
		c.log.Error(wrap.ErrorCtx(ctx, err), "failed to load trip", err)
		c.nav.Navigate(router.PathTrips)
		return err
	}

	c.state.Destination = trip.Destination
	c.state.StartDate = trip.StartDate.String()
	c.state.Budget = strconv.FormatFloat(trip.Budget, 'f', -1, 64)
	c.state.TravelStyle = trip.TravelStyle.String()
	c.state.GroupSize = trip.GroupSize
	c.state.RequiresVisa = trip.RequiresVisa
	return nil
}

func (c *TripForm) SetDestination(v string) { c.set(FieldDestination, &c.state.Destination, v) }
func (c *TripForm) SetStartDate(v string)   { c.set(FieldStartDate, &c.state.StartDate, v) }
func (c *TripForm) SetBudget(v string)      { c.set(FieldBudget, &c.state.Budget, v) }
func (c *TripForm) SetTravelStyle(v string) { c.set(FieldTravelStyle, &c.state.TravelStyle, v) }
func (c *TripForm) SetGroupSize(v string)   { c.set(FieldGroupSize, &c.state.GroupSize, v) }

func (c *TripForm) SetRequiresVisa(v bool) {
	c.state.RequiresVisa = v
	c.touched[FieldRequiresVisa] = true
}

func (c *TripForm) set(field string, dst *string, v string) {
	*dst = v
	c.touched[field] = true
}

// TouchAll makes every field show its validation message.
func (c *TripForm) TouchAll() {
	for _, f := range requiredFields {
		c.touched[f] = true
	}
}

// FieldErrors returns the messages of invalid fields the user has touched.
func (c *TripForm) FieldErrors() map[string]string {
	v, _ := c.validate()
	out := make(map[string]string)
	for field, msg := range v.Errors {
		if c.touched[field] {
			out[field] = msg
		}
	}
	return out
}

func (c *TripForm) Valid() bool {
	v, _ := c.validate()
	return v.Valid()
}

// CanSubmit mirrors the state of the save button.
func (c *TripForm) CanSubmit() bool {
	return c.Valid() && !c.state.Loading
}

// Submit creates or updates the trip and returns to the list.
// On failure the form keeps its values.
func (c *TripForm) Submit(ctx context.Context) error {
	v, trip := c.validate()
	if !v.Valid() {
		c.TouchAll()
		return ErrInvalidForm
	}
	if c.state.Loading {
		return ErrSubmitDisabled
	}

	c.state.Loading = true
	c.state.Error = ""

	var err error
	if c.state.EditMode {
		ctx = wrap.WithTripID(wrap.WithAction(ctx, "update_trip"), strconv.FormatInt(c.state.TripID, 10))
		_, err = c.trips.Update(ctx, c.state.TripID, trip)
	} else {
		ctx = wrap.WithAction(ctx, "create_trip")
		_, err = c.trips.Create(ctx, trip)
	}
	if err != nil {
		c.state.Loading = false
		c.state.Error = MsgSaveFailed
		c.log.Error(wrap.ErrorCtx(ctx, err), "failed to save trip", err)
		return err
	}

	c.nav.Navigate(router.PathTrips)
	return nil
}

func (c *TripForm) Cancel() {
	c.nav.Navigate(router.PathTrips)
}

func (c *TripForm) validate() (*validator.Validator, models.Trip) {
	v := validator.New()
	trip := models.Trip{
		Destination:  strings.TrimSpace(c.state.Destination),
		GroupSize:    strings.TrimSpace(c.state.GroupSize),
		RequiresVisa: c.state.RequiresVisa,
	}

	v.Check(trip.Destination != "", FieldDestination, "El destino es obligatorio")

	date := strings.TrimSpace(c.state.StartDate)
	v.Check(date != "", FieldStartDate, "La fecha es obligatoria")
	if date != "" {
		v.Check(validator.Matches(date, validator.DateRX), FieldStartDate, "La fecha debe tener el formato AAAA-MM-DD")
	}
	if date != "" && !v.Has(FieldStartDate) {
		d, err := models.ParseDate(date)
		v.Check(err == nil, FieldStartDate, "La fecha no es válida")
		trip.StartDate = d
	}

	budget := strings.TrimSpace(c.state.Budget)
	v.Check(budget != "", FieldBudget, "El presupuesto es obligatorio")
	if budget != "" {
		amount, err := strconv.ParseFloat(budget, 64)
		v.Check(err == nil && !math.IsInf(amount, 0), FieldBudget, "El presupuesto debe ser un número")
		if !v.Has(FieldBudget) {
			v.Check(amount >= 0, FieldBudget, "El presupuesto no puede ser negativo")
			trip.Budget = amount
		}
	}

	style, err := types.ParseTravelStyle(c.state.TravelStyle)
	v.Check(err == nil, FieldTravelStyle, "Selecciona un estilo de viaje")
	trip.TravelStyle = style

	v.Check(trip.GroupSize != "", FieldGroupSize, "Selecciona el tamaño del grupo")

	return v, trip
}
