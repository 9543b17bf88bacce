package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
)

var errBackend = errors.New("backend rejected request")

type recorder struct {
	paths []string
}

func (r *recorder) Navigate(path string) { r.paths = append(r.paths, path) }

func (r *recorder) last() string {
	if len(r.paths) == 0 {
		return ""
	}
	return r.paths[len(r.paths)-1]
}

type fakeSession struct {
	username  string
	loggedIn  bool
	loginErr  error
	loginCall int
}

func (f *fakeSession) Login(_ context.Context, creds models.Credentials) (*models.Session, error) {
	f.loginCall++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = true
	f.username = creds.Username
	return &models.Session{Token: "tok", Type: types.TokenType, Username: creds.Username}, nil
}

func (f *fakeSession) Username() (string, bool) { return f.username, f.loggedIn }

func (f *fakeSession) Logout() {
	f.loggedIn = false
	f.username = ""
}

// fakeTrips is an in-memory trip backend that counts calls.
type fakeTrips struct {
	trips  []models.Trip
	nextID int64
	err    error
	calls  map[string]int
}

func newFakeTrips(trips ...models.Trip) *fakeTrips {
	f := &fakeTrips{calls: make(map[string]int), nextID: 1}
	for _, t := range trips {
		f.trips = append(f.trips, t.WithID(f.nextID))
		f.nextID++
	}
	return f
}

func (f *fakeTrips) List(context.Context) ([]models.Trip, error) {
	f.calls["list"]++
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Trip(nil), f.trips...), nil
}

func (f *fakeTrips) Get(_ context.Context, id int64) (*models.Trip, error) {
	f.calls["get"]++
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.trips {
		if t.IDValue() == id {
			return &t, nil
		}
	}
	return nil, types.ErrTripNotFound
}

func (f *fakeTrips) Create(_ context.Context, trip models.Trip) (*models.Trip, error) {
	f.calls["create"]++
	if f.err != nil {
		return nil, f.err
	}
	created := trip.WithID(f.nextID)
	f.nextID++
	f.trips = append(f.trips, created)
	return &created, nil
}

func (f *fakeTrips) Update(_ context.Context, id int64, trip models.Trip) (*models.Trip, error) {
	f.calls["update"]++
	if f.err != nil {
		return nil, f.err
	}
	for i, t := range f.trips {
		if t.IDValue() == id {
			f.trips[i] = trip.WithID(id)
			return &f.trips[i], nil
		}
	}
	return nil, types.ErrTripNotFound
}

func (f *fakeTrips) Delete(_ context.Context, id int64) error {
	f.calls["delete"]++
	if f.err != nil {
		return f.err
	}
	for i, t := range f.trips {
		if t.IDValue() == id {
			f.trips = append(f.trips[:i], f.trips[i+1:]...)
			return nil
		}
	}
	return types.ErrTripNotFound
}

func (f *fakeTrips) Search(_ context.Context, destination string) ([]models.Trip, error) {
	f.calls["search"]++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Trip
	term := strings.ToLower(strings.TrimSpace(destination))
	for _, t := range f.trips {
		if strings.Contains(strings.ToLower(t.Destination), term) {
			out = append(out, t)
		}
	}
	return out, nil
}
