package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/validator"
)

type TripService interface {
	List(ctx context.Context) ([]models.Trip, error)
	Get(ctx context.Context, id int64) (*models.Trip, error)
	Search(ctx context.Context, term string) ([]models.Trip, error)
	Create(ctx context.Context, trip models.Trip, username string) (*models.Trip, error)
	Update(ctx context.Context, id int64, trip models.Trip, username string) (*models.Trip, error)
	Delete(ctx context.Context, id int64, username string) error
}

type Trip struct {
	trips TripService
	l     logger.Logger
}

func NewTrip(service TripService, l logger.Logger) *Trip {
	return &Trip{
		trips: service,
		l:     l,
	}
}

// List godoc
// @Summary      List trips
// @Tags         Trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Trip
// @Failure      401  {object}  map[string]string
// @Router       /api/trips [get]
func (h *Trip) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_trips")

	trips, err := h.trips.List(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list trips", err)
		serviceErrorResponse(w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, trips)
}

// Search godoc
// @Summary      Search trips by destination
// @Description  Case-insensitive substring match on the destination
// @Tags         Trips
// @Produce      json
// @Security     BearerAuth
// @Param        destination  query     string  true  "Destination fragment"
// @Success      200          {array}   models.Trip
// @Failure      401          {object}  map[string]string
// @Router       /api/trips/search [get]
func (h *Trip) Search(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "search_trips")

	if !r.URL.Query().Has("destination") {
		badRequestResponse(w, "destination query parameter is required")
		return
	}

	trips, err := h.trips.Search(ctx, r.URL.Query().Get("destination"))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to search trips", err)
		serviceErrorResponse(w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, trips)
}

// Get godoc
// @Summary      Get a trip
// @Tags         Trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {object}  models.Trip
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [get]
func (h *Trip) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_trip")

	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithTripID(ctx, strconv.FormatInt(id, 10))

	trip, err := h.trips.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "failed to get trip", err)
		serviceErrorResponse(w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, trip)
}

// Create godoc
// @Summary      Create a trip
// @Description  The trip is owned by the authenticated user. Any id in the body is ignored.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.TripRequest  true  "Trip"
// @Success      201      {object}  models.Trip
// @Failure      422      {object}  map[string]any
// @Router       /api/trips [post]
func (h *Trip) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_trip")

	trip, ok := h.readTrip(w, r)
	if !ok {
		return
	}

	created, err := h.trips.Create(ctx, trip, username(ctx))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create trip", err)
		serviceErrorResponse(w, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/trips/"+strconv.FormatInt(created.IDValue(), 10))
	if err := writeJSON(w, http.StatusCreated, created, headers); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Update godoc
// @Summary      Replace a trip
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int              true  "Trip ID"
// @Param        request  body      dto.TripRequest  true  "Trip"
// @Success      200      {object}  models.Trip
// @Failure      404      {object}  map[string]string
// @Failure      422      {object}  map[string]any
// @Router       /api/trips/{id} [put]
func (h *Trip) Update(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_trip")

	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithTripID(ctx, strconv.FormatInt(id, 10))

	trip, ok := h.readTrip(w, r)
	if !ok {
		return
	}

	updated, err := h.trips.Update(ctx, id, trip, username(ctx))
	if err != nil {
		h.logFailure(ctx, "failed to update trip", err)
		serviceErrorResponse(w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a trip
// @Tags         Trips
// @Security     BearerAuth
// @Param        id   path  int  true  "Trip ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [delete]
func (h *Trip) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_trip")

	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithTripID(ctx, strconv.FormatInt(id, 10))

	if err := h.trips.Delete(ctx, id, username(ctx)); err != nil {
		h.logFailure(ctx, "failed to delete trip", err)
		serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Trip) readTrip(w http.ResponseWriter, r *http.Request) (models.Trip, bool) {
	req := &dto.TripRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return models.Trip{}, false
	}

	v := validator.New()
	trip := dto.ValidateTrip(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return models.Trip{}, false
	}
	return trip, true
}

func (h *Trip) respond(ctx context.Context, w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// logFailure logs expected client errors at warn level and the rest as errors.
func (h *Trip) logFailure(ctx context.Context, msg string, err error) {
	if GetCode(err) < http.StatusInternalServerError {
		h.l.Warn(wrap.ErrorCtx(ctx, err), msg, "error", err.Error())
		return
	}
	h.l.Error(wrap.ErrorCtx(ctx, err), msg, err)
}

func username(ctx context.Context) string {
	if u := models.UserFromContext(ctx); u != nil {
		return u.Username
	}
	return ""
}
