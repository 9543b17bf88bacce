package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
	"github.com/jackc/pgx/v5"
)

const service = "trip-api"

type TripRepo struct {
	db Querier
}

func NewTripRepo(db Querier) *TripRepo {
	return &TripRepo{db: db}
}

const tripColumns = `id, destination, budget, travel_style, requires_visa, group_size, start_date`

func (r *TripRepo) List(ctx context.Context) (trips []models.Trip, err error) {
	defer observe("trip_list", time.Now(), &err)

	q := `SELECT ` + tripColumns + ` FROM trips ORDER BY id`
	rows, err := TxorDB(ctx, r.db).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	return collectTrips(rows)
}

func (r *TripRepo) GetByID(ctx context.Context, id int64) (_ *models.Trip, err error) {
	defer observe("trip_get", time.Now(), &err)

	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	rows, err := TxorDB(ctx, r.db).Query(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}

	trip, err := pgx.CollectExactlyOneRow(rows, scanTrip)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrTripNotFound
		}
		return nil, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	return &trip, nil
}

func (r *TripRepo) SearchByDestination(ctx context.Context, term string) (trips []models.Trip, err error) {
	defer observe("trip_search", time.Now(), &err)

	q := `SELECT ` + tripColumns + ` FROM trips
		WHERE destination ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY id`
	rows, err := TxorDB(ctx, r.db).Query(ctx, q, escapeLike(term))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	return collectTrips(rows)
}

func (r *TripRepo) Create(ctx context.Context, rec *models.TripRecord) (id int64, err error) {
	defer observe("trip_create", time.Now(), &err)

	const q = `
		INSERT INTO trips (destination, budget, travel_style, requires_visa, group_size, start_date, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err = TxorDB(ctx, r.db).QueryRow(ctx, q,
		rec.Destination,
		rec.Budget,
		rec.TravelStyle.String(),
		rec.RequiresVisa,
		rec.GroupSize,
		rec.StartDate.Time,
		rec.UserID,
		rec.CreatedAt,
		rec.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	return id, nil
}

func (r *TripRepo) Update(ctx context.Context, id int64, trip models.Trip) (err error) {
	defer observe("trip_update", time.Now(), &err)

	const q = `
		UPDATE trips
		SET destination = $2, budget = $3, travel_style = $4, requires_visa = $5,
			group_size = $6, start_date = $7, updated_at = now()
		WHERE id = $1`

	tag, err := TxorDB(ctx, r.db).Exec(ctx, q,
		id,
		trip.Destination,
		trip.Budget,
		trip.TravelStyle.String(),
		trip.RequiresVisa,
		trip.GroupSize,
		trip.StartDate.Time,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrTripNotFound
	}
	return nil
}

func (r *TripRepo) Delete(ctx context.Context, id int64) (err error) {
	defer observe("trip_delete", time.Now(), &err)

	tag, err := TxorDB(ctx, r.db).Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrTripNotFound
	}
	return nil
}

func collectTrips(rows pgx.Rows) ([]models.Trip, error) {
	trips, err := pgx.CollectRows(rows, scanTrip)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func scanTrip(row pgx.CollectableRow) (models.Trip, error) {
	var (
		t         models.Trip
		id        int64
		style     string
		startDate time.Time
	)
	if err := row.Scan(&id, &t.Destination, &t.Budget, &style, &t.RequiresVisa, &t.GroupSize, &startDate); err != nil {
		return models.Trip{}, err
	}

	parsed, err := types.ParseTravelStyle(style)
	if err != nil {
		return models.Trip{}, err
	}
	t.TravelStyle = parsed
	t.StartDate = models.DateOf(startDate)
	return t.WithID(id), nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(service, operation, *err, time.Since(start))
}
