package controller

import (
	"testing"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededTrips() *fakeTrips {
	return newFakeTrips(
		models.Trip{Destination: "Barcelona, España"},
		models.Trip{Destination: "Lisboa"},
		models.Trip{Destination: "Bariloche"},
	)
}

func TestTripList_InitLoadsTripsAndUsername(t *testing.T) {
	trips := seededTrips()
	c := NewTripList(trips, &fakeSession{username: "ana", loggedIn: true}, &recorder{}, logger.Discard())

	require.NoError(t, c.Init(t.Context()))

	st := c.State()
	assert.Equal(t, "ana", st.Username)
	assert.Len(t, st.Trips, 3)
	assert.Equal(t, st.Trips, st.Filtered)
	assert.False(t, st.Loading)
}

func TestTripList_InitDefaultUsername(t *testing.T) {
	c := NewTripList(newFakeTrips(), &fakeSession{}, &recorder{}, logger.Discard())

	require.NoError(t, c.Init(t.Context()))
	st := c.State()
	assert.Equal(t, DefaultDisplayName, st.Username)
	assert.NotNil(t, st.Trips)
	assert.Empty(t, st.Trips)
}

func TestTripList_InitFailure(t *testing.T) {
	trips := seededTrips()
	trips.err = errBackend
	c := NewTripList(trips, &fakeSession{}, &recorder{}, logger.Discard())

	assert.ErrorIs(t, c.Init(t.Context()), errBackend)
	st := c.State()
	assert.False(t, st.Loading)
	assert.Equal(t, MsgLoadFailed, st.Error)
}

func TestTripList_Search(t *testing.T) {
	trips := seededTrips()
	c := NewTripList(trips, &fakeSession{}, &recorder{}, logger.Discard())
	require.NoError(t, c.Init(t.Context()))

	require.NoError(t, c.Search(t.Context(), "bar"))
	st := c.State()
	require.Len(t, st.Filtered, 2)
	assert.Len(t, st.Trips, 3, "full list is kept")
	assert.Equal(t, 1, trips.calls["search"])

	require.NoError(t, c.Search(t.Context(), "tokyo"))
	assert.Empty(t, c.State().Filtered)

	require.NoError(t, c.Search(t.Context(), "   "))
	st = c.State()
	assert.Len(t, st.Filtered, 3)
	assert.Equal(t, 2, trips.calls["search"], "blank term never reaches the backend")
}

func TestTripList_SearchFailureKeepsView(t *testing.T) {
	trips := seededTrips()
	c := NewTripList(trips, &fakeSession{}, &recorder{}, logger.Discard())
	require.NoError(t, c.Init(t.Context()))

	trips.err = errBackend
	assert.ErrorIs(t, c.Search(t.Context(), "lis"), errBackend)
	assert.Len(t, c.State().Filtered, 3)
}

func TestTripList_DeleteNeedsConfirmation(t *testing.T) {
	trips := seededTrips()
	c := NewTripList(trips, &fakeSession{}, &recorder{}, logger.Discard())
	require.NoError(t, c.Init(t.Context()))

	assert.ErrorIs(t, c.ConfirmDelete(t.Context()), ErrNothingToConfirm)

	c.RequestDelete(2)
	require.NotNil(t, c.State().PendingDelete)
	assert.Equal(t, int64(2), *c.State().PendingDelete)

	c.CancelDelete()
	assert.Nil(t, c.State().PendingDelete)
	assert.ErrorIs(t, c.ConfirmDelete(t.Context()), ErrNothingToConfirm)
	assert.Zero(t, trips.calls["delete"])
}

func TestTripList_ConfirmDeleteReloadsAndResetsFilter(t *testing.T) {
	trips := seededTrips()
	c := NewTripList(trips, &fakeSession{}, &recorder{}, logger.Discard())
	require.NoError(t, c.Init(t.Context()))
	require.NoError(t, c.Search(t.Context(), "bar"))

	c.RequestDelete(1)
	require.NoError(t, c.ConfirmDelete(t.Context()))

	st := c.State()
	assert.Equal(t, 2, trips.calls["list"], "list is reloaded")
	assert.Len(t, st.Trips, 2)
	assert.Equal(t, st.Trips, st.Filtered, "search filter is dropped")
	assert.Empty(t, st.SearchTerm)
	assert.Nil(t, st.PendingDelete)
	for _, tr := range st.Trips {
		assert.NotEqual(t, int64(1), tr.IDValue())
	}
}

func TestTripList_DeleteFailure(t *testing.T) {
	trips := seededTrips()
	c := NewTripList(trips, &fakeSession{}, &recorder{}, logger.Discard())
	require.NoError(t, c.Init(t.Context()))

	c.RequestDelete(99)
	assert.Error(t, c.ConfirmDelete(t.Context()))
	assert.Equal(t, MsgDeleteFailed, c.State().Error)
	assert.Equal(t, 1, trips.calls["list"])
}

func TestTripList_Navigation(t *testing.T) {
	sess := &fakeSession{username: "admin", loggedIn: true}
	nav := &recorder{}
	c := NewTripList(newFakeTrips(), sess, nav, logger.Discard())

	c.New()
	c.Edit(4)
	c.Logout()

	assert.Equal(t, []string{router.PathTripNew, "/trips/edit/4", router.PathLogin}, nav.paths)
	assert.False(t, sess.loggedIn)
}
