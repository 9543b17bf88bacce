package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

type TripListState struct {
	Username   string
	Trips      []models.Trip
	Filtered   []models.Trip
	SearchTerm string
	Loading    bool
	Error      string

	// PendingDelete is the trip awaiting confirmation, if any.
	PendingDelete *int64
}

type TripList struct {
	state TripListState

	trips   TripAPI
	session SessionReader
	nav     Navigator
	log     logger.Logger
}

func NewTripList(trips TripAPI, session SessionReader, nav Navigator, log logger.Logger) *TripList {
	return &TripList{
		trips:   trips,
		session: session,
		nav:     nav,
		log:     log,
	}
}

// State returns a copy of the view state.
func (c *TripList) State() TripListState {
	s := c.state
	if c.state.PendingDelete != nil {
		id := *c.state.PendingDelete
		s.PendingDelete = &id
	}
	return s
}

// Init reads the username and loads the full list.
func (c *TripList) Init(ctx context.Context) error {
	c.state.Username = DefaultDisplayName
	if name, ok := c.session.Username(); ok && name != "" {
		c.state.Username = name
	}
	return c.load(wrap.WithAction(ctx, "load_trips"))
}

func (c *TripList) load(ctx context.Context) error {
	c.state.Loading = true
	c.state.Error = ""

	trips, err := c.trips.List(ctx)
	c.state.Loading = false
	if err != nil {
		c.state.Error = MsgLoadFailed
		c.log.Error(wrap.ErrorCtx(ctx, err), "failed to load trips", err)
		return err
	}

	if trips == nil {
		trips = []models.Trip{}
	}
	c.state.Trips = trips
	c.state.Filtered = trips
	return nil
}

// Search runs on every change of the search box. A blank term restores the
// full list; any other term is filtered by the backend alone.
func (c *TripList) Search(ctx context.Context, term string) error {
	c.state.SearchTerm = term
	if strings.TrimSpace(term) == "" {
		c.state.Filtered = c.state.Trips
		return nil
	}

	ctx = wrap.WithAction(ctx, "search_trips")
	found, err := c.trips.Search(ctx, term)
	if err != nil {
		c.log.Error(wrap.ErrorCtx(ctx, err), "failed to search trips", err, "term", term)
		return err
	}

	if found == nil {
		found = []models.Trip{}
	}
	c.state.Filtered = found
	return nil
}

// RequestDelete asks for confirmation before deleting id.
func (c *TripList) RequestDelete(id int64) {
	c.state.PendingDelete = &id
}

func (c *TripList) CancelDelete() {
	c.state.PendingDelete = nil
}

// ConfirmDelete deletes the pending trip and reloads the full list.
// The reload drops the active search term.
func (c *TripList) ConfirmDelete(ctx context.Context) error {
	if c.state.PendingDelete == nil {
		return ErrNothingToConfirm
	}
	id := *c.state.PendingDelete
	c.state.PendingDelete = nil

	ctx = wrap.WithTripID(wrap.WithAction(ctx, "delete_trip"), strconv.FormatInt(id, 10))
	if err := c.trips.Delete(ctx, id); err != nil {
		c.state.Error = MsgDeleteFailed
		c.log.Error(wrap.ErrorCtx(ctx, err), "failed to delete trip", err)
		return err
	}

	c.state.SearchTerm = ""
	return c.load(ctx)
}

func (c *TripList) New() {
	c.nav.Navigate(router.PathTripNew)
}

func (c *TripList) Edit(id int64) {
	c.nav.Navigate(router.EditPath(id))
}

func (c *TripList) Logout() {
	c.session.Logout()
	c.nav.Navigate(router.PathLogin)
}
