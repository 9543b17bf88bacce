package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
)

// TripRepo keeps trips in process memory. Ids start at 1 and are never reused.
type TripRepo struct {
	mu     sync.RWMutex
	nextID int64
	trips  map[int64]models.TripRecord
}

func NewTripRepo() *TripRepo {
	return &TripRepo{
		nextID: 1,
		trips:  make(map[int64]models.TripRecord),
	}
}

func (r *TripRepo) List(_ context.Context) ([]models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.TripRecord) bool { return true }), nil
}

func (r *TripRepo) GetByID(_ context.Context, id int64) (*models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.trips[id]
	if !ok {
		return nil, types.ErrTripNotFound
	}
	trip := rec.Trip
	return &trip, nil
}

func (r *TripRepo) SearchByDestination(_ context.Context, term string) ([]models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	return r.collect(func(rec models.TripRecord) bool {
		return strings.Contains(strings.ToLower(rec.Destination), needle)
	}), nil
}

func (r *TripRepo) Create(_ context.Context, rec *models.TripRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := *rec
	stored.Trip = stored.Trip.WithID(id)
	r.trips[id] = stored
	return id, nil
}

func (r *TripRepo) Update(_ context.Context, id int64, trip models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.trips[id]
	if !ok {
		return types.ErrTripNotFound
	}
	rec.Trip = trip.WithID(id)
	rec.UpdatedAt = time.Now().UTC()
	r.trips[id] = rec
	return nil
}

func (r *TripRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return types.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

// collect returns matching trips ordered by id. Callers hold the lock.
func (r *TripRepo) collect(match func(models.TripRecord) bool) []models.Trip {
	out := make([]models.Trip, 0, len(r.trips))
	for _, rec := range r.trips {
		if match(rec) {
			out = append(out, rec.Trip)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDValue() < out[j].IDValue() })
	return out
}
