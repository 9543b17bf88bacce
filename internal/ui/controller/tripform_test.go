package controller

import (
	"testing"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValid(c *TripForm) {
	c.SetDestination("Barcelona, España")
	c.SetStartDate("2025-06-01")
	c.SetBudget("1500")
	c.SetTravelStyle("STANDARD")
	c.SetGroupSize(models.GroupSolo)
	c.SetRequiresVisa(false)
}

func TestTripForm_Defaults(t *testing.T) {
	c := NewTripForm(newFakeTrips(), &recorder{}, logger.Discard(), "")
	require.NoError(t, c.Init(t.Context()))

	st := c.State()
	assert.False(t, st.EditMode)
	assert.Equal(t, models.GroupSolo, st.GroupSize)
	assert.False(t, st.RequiresVisa)
	assert.Empty(t, st.Errors, "untouched fields show no errors")
	assert.False(t, c.Valid())
	assert.False(t, c.CanSubmit())
}

func TestTripForm_MissingFieldBlocksSubmit(t *testing.T) {
	unset := map[string]func(*TripForm){
		FieldDestination: func(c *TripForm) { c.SetDestination("  ") },
		FieldStartDate:   func(c *TripForm) { c.SetStartDate("") },
		FieldBudget:      func(c *TripForm) { c.SetBudget("") },
		FieldTravelStyle: func(c *TripForm) { c.SetTravelStyle("") },
		FieldGroupSize:   func(c *TripForm) { c.SetGroupSize("") },
	}

	for field, clearField := range unset {
		t.Run(field, func(t *testing.T) {
			trips := newFakeTrips()
			nav := &recorder{}
			c := NewTripForm(trips, nav, logger.Discard(), "")
			fillValid(c)
			clearField(c)

			assert.False(t, c.Valid())
			assert.ErrorIs(t, c.Submit(t.Context()), ErrInvalidForm)
			assert.Zero(t, trips.calls["create"])
			assert.Empty(t, nav.paths)
			assert.Contains(t, c.FieldErrors(), field)
		})
	}
}

func TestTripForm_FieldMessages(t *testing.T) {
	c := NewTripForm(newFakeTrips(), &recorder{}, logger.Discard(), "")
	c.SetDestination("")
	c.SetBudget("-5")
	c.SetTravelStyle("CRUISE")

	errs := c.FieldErrors()
	assert.Equal(t, "El destino es obligatorio", errs[FieldDestination])
	assert.Equal(t, "El presupuesto no puede ser negativo", errs[FieldBudget])
	assert.Equal(t, "Selecciona un estilo de viaje", errs[FieldTravelStyle])
	assert.NotContains(t, errs, FieldStartDate, "start date not touched yet")

	c.TouchAll()
	assert.Equal(t, "La fecha es obligatoria", c.FieldErrors()[FieldStartDate])

	c.SetBudget("mucho")
	assert.Equal(t, "El presupuesto debe ser un número", c.FieldErrors()[FieldBudget])

	c.SetStartDate("1/6/2025")
	assert.Equal(t, "La fecha debe tener el formato AAAA-MM-DD", c.FieldErrors()[FieldStartDate])
	c.SetStartDate("2025-02-30")
	assert.Equal(t, "La fecha no es válida", c.FieldErrors()[FieldStartDate])
}

func TestTripForm_ZeroBudgetIsValid(t *testing.T) {
	c := NewTripForm(newFakeTrips(), &recorder{}, logger.Discard(), "")
	fillValid(c)
	c.SetBudget("0")
	assert.True(t, c.Valid())
}

func TestTripForm_CreateNavigatesToList(t *testing.T) {
	trips := newFakeTrips()
	nav := &recorder{}
	c := NewTripForm(trips, nav, logger.Discard(), "")
	fillValid(c)
	c.SetTravelStyle("standard")

	require.NoError(t, c.Submit(t.Context()))
	assert.Equal(t, router.PathTrips, nav.last())
	require.Len(t, trips.trips, 1)

	got := trips.trips[0]
	assert.Equal(t, "Barcelona, España", got.Destination)
	assert.Equal(t, 1500.0, got.Budget)
	assert.Equal(t, types.Standard, got.TravelStyle)
	assert.Equal(t, "2025-06-01", got.StartDate.String())
	assert.Equal(t, models.GroupSolo, got.GroupSize)
}

func TestTripForm_SaveFailureKeepsForm(t *testing.T) {
	trips := newFakeTrips()
	trips.err = errBackend
	nav := &recorder{}
	c := NewTripForm(trips, nav, logger.Discard(), "")
	fillValid(c)

	assert.ErrorIs(t, c.Submit(t.Context()), errBackend)
	st := c.State()
	assert.False(t, st.Loading)
	assert.Equal(t, MsgSaveFailed, st.Error)
	assert.Equal(t, "Barcelona, España", st.Destination)
	assert.Empty(t, nav.paths)
}

func TestTripForm_EditLoadsAndUpdates(t *testing.T) {
	trips := newFakeTrips(models.Trip{
		Destination:  "Kyoto",
		Budget:       2500.5,
		TravelStyle:  types.Luxury,
		GroupSize:    models.GroupCouple,
		RequiresVisa: true,
		StartDate:    models.NewDate(2026, 4, 1),
	})
	nav := &recorder{}
	c := NewTripForm(trips, nav, logger.Discard(), "1")

	require.NoError(t, c.Init(t.Context()))
	st := c.State()
	assert.True(t, st.EditMode)
	assert.Equal(t, int64(1), st.TripID)
	assert.Equal(t, "Kyoto", st.Destination)
	assert.Equal(t, "2500.5", st.Budget)
	assert.Equal(t, "LUXURY", st.TravelStyle)
	assert.Equal(t, models.GroupCouple, st.GroupSize)
	assert.Equal(t, "2026-04-01", st.StartDate)
	assert.True(t, st.RequiresVisa)
	assert.True(t, c.Valid())

	c.SetBudget("1800")
	require.NoError(t, c.Submit(t.Context()))
	assert.Equal(t, 1, trips.calls["update"])
	assert.Zero(t, trips.calls["create"])
	assert.Equal(t, 1800.0, trips.trips[0].Budget)
	assert.Equal(t, []string{router.PathTrips}, nav.paths)
}

func TestTripForm_EditLoadFailureGoesBack(t *testing.T) {
	for _, id := range []string{"42", "abc", "-1"} {
		t.Run(id, func(t *testing.T) {
			nav := &recorder{}
			c := NewTripForm(newFakeTrips(), nav, logger.Discard(), id)

			assert.Error(t, c.Init(t.Context()))
			assert.Equal(t, []string{router.PathTrips}, nav.paths)
		})
	}
}

func TestTripForm_PrepareSkipsFetch(t *testing.T) {
	trips := newFakeTrips(models.Trip{Destination: "Kyoto"})
	nav := &recorder{}
	c := NewTripForm(trips, nav, logger.Discard(), "1")

	require.NoError(t, c.Prepare(t.Context()))
	fillValid(c)
	require.NoError(t, c.Submit(t.Context()))

	assert.Zero(t, trips.calls["get"])
	assert.Equal(t, 1, trips.calls["update"])
	assert.Equal(t, "Barcelona, España", trips.trips[0].Destination)

	bad := NewTripForm(trips, nav, logger.Discard(), "abc")
	assert.Error(t, bad.Prepare(t.Context()))
	assert.Equal(t, router.PathTrips, nav.last())
}

func TestTripForm_Cancel(t *testing.T) {
	nav := &recorder{}
	c := NewTripForm(newFakeTrips(), nav, logger.Discard(), "")
	c.Cancel()
	assert.Equal(t, []string{router.PathTrips}, nav.paths)
}
