package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Temutjin2k/solotrip-connect/config"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/server"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/memory"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/tripclient"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/service/auth"
	"github.com/Temutjin2k/solotrip-connect/internal/service/trip"
	"github.com/Temutjin2k/solotrip-connect/internal/session"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/controller"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type app struct {
	handler http.Handler
	session *session.Store
	api     *countingAPI
}

// countingAPI records which backend calls a request made.
type countingAPI struct {
	controller.TripAPI

	mu    sync.Mutex
	calls map[string]int
}

func (c *countingAPI) count(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[op]++
}

func (c *countingAPI) reset() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.calls
	c.calls = make(map[string]int)
	return prev
}

func (c *countingAPI) List(ctx context.Context) ([]models.Trip, error) {
	c.count("list")
	return c.TripAPI.List(ctx)
}

func (c *countingAPI) Get(ctx context.Context, id int64) (*models.Trip, error) {
	c.count("get")
	return c.TripAPI.Get(ctx, id)
}

func (c *countingAPI) Update(ctx context.Context, id int64, trip models.Trip) (*models.Trip, error) {
	c.count("update")
	return c.TripAPI.Update(ctx, id, trip)
}

func (c *countingAPI) Delete(ctx context.Context, id int64) error {
	c.count("delete")
	return c.TripAPI.Delete(ctx, id)
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Discard()

	users := memory.NewUserRepo()
	authSvc := auth.NewAuthService(users, auth.NewTokenService("web-test-secret", time.Hour, log), nil, log)
	_, err := authSvc.EnsureUser(context.Background(), "admin", "", "password")
	require.NoError(t, err)
	tripSvc := trip.NewService(memory.NewTripRepo(), users, nil, nil, log)

	apiSrv, err := server.New(config.Config{}, tripSvc, authSvc, log)
	require.NoError(t, err)
	backend := httptest.NewServer(apiSrv.Handler())
	t.Cleanup(backend.Close)

	client, err := tripclient.NewClient(backend.URL, nil, nil, log)
	require.NoError(t, err)
	store := session.NewStore(client, log)
	client.SetTokenSource(store)

	api := &countingAPI{TripAPI: client, calls: make(map[string]int)}
	srv, err := New(config.Config{}, store, api, log)
	require.NoError(t, err)

	return &app{handler: srv.Handler(), session: store, api: api}
}

func (a *app) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *app) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *app) login(t *testing.T) {
	t.Helper()
	rec := a.post(t, "/login", url.Values{"username": {"admin"}, "password": {"password"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/trips", rec.Header().Get("Location"))
}

func tripForm(dest, budget string) url.Values {
	return url.Values{
		"destination": {dest},
		"startDate":   {"2025-06-01"},
		"budget":      {budget},
		"travelStyle": {"STANDARD"},
		"groupSize":   {"Solo"},
	}
}

func TestWeb_Redirects(t *testing.T) {
	a := newApp(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "/trips"},
		{"/trips", "/login"},
		{"/trips/new", "/login"},
		{"/trips/edit/1", "/login"},
		{"/somewhere/else", "/login"},
	}
	for _, tt := range tests {
		rec := a.get(t, tt.path)
		assert.Equal(t, http.StatusFound, rec.Code, tt.path)
		assert.Equal(t, tt.want, rec.Header().Get("Location"), tt.path)
	}

	rec := a.post(t, "/trips/new", tripForm("Roma", "100"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestWeb_LoginPageAndHealth(t *testing.T) {
	a := newApp(t)

	rec := a.get(t, "/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="login-btn"`)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = a.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "available")

	rec = a.get(t, "/static/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.get(t, "/static/search.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "requestSubmit")
}

func TestWeb_RejectedLogin(t *testing.T) {
	a := newApp(t)

	rec := a.post(t, "/login", url.Values{"username": {"admin"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), controller.MsgLoginFailed)
	assert.False(t, a.session.IsAuthenticated())

	rec = a.post(t, "/login", url.Values{"username": {"admin"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeb_TripLifecycle(t *testing.T) {
	a := newApp(t)
	a.login(t)

	rec := a.get(t, "/trips")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hola, admin!")
	assert.Contains(t, rec.Body.String(), "No hay viajes registrados")
	assert.Contains(t, rec.Body.String(), `src="/static/search.js"`)

	// invalid form never reaches the API
	rec = a.post(t, "/trips/new", tripForm("", "1500"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "El destino es obligatorio")

	rec = a.post(t, "/trips/new", tripForm("Barcelona, España", "1500"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/trips", rec.Header().Get("Location"))

	rec = a.get(t, "/trips")
	body := rec.Body.String()
	assert.Contains(t, body, `id="trip-1"`)
	assert.Contains(t, body, "Barcelona, España")
	assert.Contains(t, body, "1,500.00")
	assert.Contains(t, body, "1 jun 2025")

	rec = a.get(t, "/trips?q=tokyo")
	assert.NotContains(t, rec.Body.String(), `id="trip-1"`)
	rec = a.get(t, "/trips?q=barce")
	assert.Contains(t, rec.Body.String(), `id="trip-1"`)

	rec = a.get(t, "/trips/edit/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="1500"`)
	assert.Contains(t, rec.Body.String(), "Editar Viaje")

	rec = a.post(t, "/trips/edit/1", tripForm("Barcelona, España", "1800"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, a.get(t, "/trips").Body.String(), "1,800.00")

	rec = a.get(t, "/trips/delete/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), controller.MsgDeleteConfirm)

	rec = a.post(t, "/trips/delete/1", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotContains(t, a.get(t, "/trips").Body.String(), `id="trip-1"`)
}

func TestWeb_ActionsCallBackendOnce(t *testing.T) {
	a := newApp(t)
	a.login(t)

	rec := a.post(t, "/trips/new", tripForm("Lima", "100"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	a.api.reset()

	rec = a.post(t, "/trips/edit/1", tripForm("Cusco", "200"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, map[string]int{"update": 1}, a.api.reset())

	rec = a.post(t, "/trips/edit/abc", tripForm("Cusco", "200"))
	assert.Equal(t, "/trips", rec.Header().Get("Location"))
	assert.Empty(t, a.api.reset())

	rec = a.post(t, "/trips/delete/1", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, map[string]int{"delete": 1, "list": 1}, a.api.reset())
}

func TestWeb_EditMissingTripGoesBack(t *testing.T) {
	a := newApp(t)
	a.login(t)

	rec := a.get(t, "/trips/edit/999")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/trips", rec.Header().Get("Location"))
}

func TestWeb_Logout(t *testing.T) {
	a := newApp(t)
	a.login(t)

	rec := a.post(t, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, a.session.IsAuthenticated())

	rec = a.get(t, "/trips")
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestMoneyAndDate(t *testing.T) {
	assert.Equal(t, "0.00", money(0))
	assert.Equal(t, "999.50", money(999.5))
	assert.Equal(t, "1,500.00", money(1500))
	assert.Equal(t, "1,234,567.89", money(1234567.891))
	assert.Equal(t, "-1,000.00", money(-1000))
}
