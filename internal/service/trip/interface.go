package trip

import (
	"context"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
)

type TripRepo interface {
	List(ctx context.Context) ([]models.Trip, error)
	GetByID(ctx context.Context, id int64) (*models.Trip, error)
	SearchByDestination(ctx context.Context, term string) ([]models.Trip, error)
	Create(ctx context.Context, rec *models.TripRecord) (int64, error)
	Update(ctx context.Context, id int64, trip models.Trip) error
	Delete(ctx context.Context, id int64) error
}

type UserRepo interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type EventPublisher interface {
	PublishTripEvent(ctx context.Context, event models.TripEvent) error
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishTripEvent(context.Context, models.TripEvent) error { return nil }
