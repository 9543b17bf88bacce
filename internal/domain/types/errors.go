package types

import "errors"

var (
	ErrNotFound           = errors.New("requested item not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidTravelStyle = errors.New("invalid travel style")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDatabaseFailed     = errors.New("database operation failed")
)
