// Package controller holds the view controllers of the web application.
// Controllers own plain view-state structs, mutate them in response to user
// actions and leave rendering to the caller.
package controller

import (
	"context"
	"errors"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
)

var (
	ErrSubmitDisabled   = errors.New("submit is disabled")
	ErrInvalidForm      = errors.New("form has invalid fields")
	ErrNothingToConfirm = errors.New("no delete is pending confirmation")
)

// User-facing messages.
const (
	MsgLoginFailed     = "Usuario o contraseña incorrectos"
	MsgLoadFailed      = "No se pudieron cargar los viajes"
	MsgDeleteFailed    = "No se pudo eliminar el viaje"
	MsgSaveFailed      = "No se pudo guardar el viaje"
	MsgDeleteConfirm   = "¿Estás seguro de que quieres eliminar este viaje?"
	DefaultDisplayName = "Usuario"
)

// Navigator moves the application to another path.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Authenticator starts a session.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
}

// SessionReader is the read side of the session plus logout.
type SessionReader interface {
	Username() (string, bool)
	Logout()
}

// TripAPI is the trip data client as seen by the controllers.
type TripAPI interface {
	List(ctx context.Context) ([]models.Trip, error)
	Get(ctx context.Context, id int64) (*models.Trip, error)
	Create(ctx context.Context, trip models.Trip) (*models.Trip, error)
	Update(ctx context.Context, id int64, trip models.Trip) (*models.Trip, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, destination string) ([]models.Trip, error)
}
