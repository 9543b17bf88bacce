package trip

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
	"github.com/Temutjin2k/solotrip-connect/pkg/trm"
)

type Service struct {
	trips     TripRepo
	users     UserRepo
	publisher EventPublisher
	trm       trm.TxManager
	now       func() time.Time

	l logger.Logger
}

func NewService(trips TripRepo, users UserRepo, publisher EventPublisher, txManager trm.TxManager, log logger.Logger) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if txManager == nil {
		txManager = trm.Nop{}
	}
	return &Service{
		trips:     trips,
		users:     users,
		publisher: publisher,
		trm:       txManager,
		now:       time.Now,
		l:         log,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Trip, error) {
	ctx = wrap.WithAction(ctx, "list_trips")

	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return trips, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Trip, error) {
	ctx = withTrip(wrap.WithAction(ctx, "get_trip"), id)

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return trip, nil
}

// Search returns trips whose destination contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) ([]models.Trip, error) {
	ctx = wrap.WithAction(ctx, "search_trips")

	trips, err := s.trips.SearchByDestination(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return trips, nil
}

// Create stores trip owned by username. Any id on the input is ignored.
func (s *Service) Create(ctx context.Context, trip models.Trip, username string) (*models.Trip, error) {
	ctx = wrap.WithUsername(wrap.WithAction(ctx, "create_trip"), username)

	owner, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	trip.ID = nil
	now := s.now().UTC()
	rec := &models.TripRecord{
		Trip:      trip,
		UserID:    owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.trips.Create(ctx, rec)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	created := trip.WithID(id)
	ctx = withTrip(ctx, id)
	metrics.RecordTripOperation("create")
	s.l.Info(ctx, "trip created", "destination", created.Destination)

	s.publish(ctx, models.TripCreated, id, &created, username)
	return &created, nil
}

// Update replaces every editable field of the trip with id.
func (s *Service) Update(ctx context.Context, id int64, trip models.Trip, username string) (*models.Trip, error) {
	ctx = withTrip(wrap.WithUsername(wrap.WithAction(ctx, "update_trip"), username), id)

	trip.ID = nil
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.trips.GetByID(ctx, id); err != nil {
			return err
		}
		return s.trips.Update(ctx, id, trip)
	})
	if err != nil {
		s.txFailed(ctx, err)
		return nil, wrap.Error(ctx, err)
	}

	updated := trip.WithID(id)
	metrics.RecordTripOperation("update")
	s.l.Info(ctx, "trip updated")

	s.publish(ctx, models.TripUpdated, id, &updated, username)
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64, username string) error {
	ctx = withTrip(wrap.WithUsername(wrap.WithAction(ctx, "delete_trip"), username), id)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.trips.GetByID(ctx, id); err != nil {
			return err
		}
		return s.trips.Delete(ctx, id)
	})
	if err != nil {
		s.txFailed(ctx, err)
		return wrap.Error(ctx, err)
	}

	metrics.RecordTripOperation("delete")
	s.l.Info(ctx, "trip deleted")

	s.publish(ctx, models.TripDeleted, id, nil, username)
	return nil
}

// publish never fails the caller. Broker errors are only logged.
func (s *Service) publish(ctx context.Context, typ models.TripEventType, id int64, trip *models.Trip, username string) {
	event := models.TripEvent{
		Type:       typ,
		TripID:     id,
		Trip:       trip,
		Username:   username,
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.PublishTripEvent(ctx, event); err != nil {
		ctx = wrap.WithAction(wrap.ErrorCtx(ctx, err), types.ActionTripEventPublishFailed)
		s.l.Error(ctx, "failed to publish trip event", fmt.Errorf("%s: %w", typ, err))
	}
}

func withTrip(ctx context.Context, id int64) context.Context {
	return wrap.WithTripID(ctx, strconv.FormatInt(id, 10))
}

// txFailed logs a transaction that failed for a reason other than a missing trip.
func (s *Service) txFailed(ctx context.Context, err error) {
	if errors.Is(err, types.ErrTripNotFound) {
		return
	}
	s.l.Error(wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed), "transaction failed", err)
}
