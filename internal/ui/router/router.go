package router

import (
	"strconv"
	"strings"
)

const (
	PathRoot     = "/"
	PathLogin    = "/login"
	PathTrips    = "/trips"
	PathTripNew  = "/trips/new"
	PathTripEdit = "/trips/edit/"
)

// View names the screen a path renders.
type View string

const (
	ViewNone     View = ""
	ViewLogin    View = "login"
	ViewTripList View = "trip-list"
	ViewTripForm View = "trip-form"
)

// EditPath returns the edit path of trip id.
func EditPath(id int64) string {
	return PathTripEdit + strconv.FormatInt(id, 10)
}

// AuthState reports whether a session is active.
type AuthState interface {
	IsAuthenticated() bool
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard gates protected views. Every check reads the session again.
type Guard struct {
	auth AuthState
}

func NewGuard(auth AuthState) *Guard {
	return &Guard{auth: auth}
}

func (g *Guard) Check() Decision {
	if g.auth.IsAuthenticated() {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: PathLogin}
}

// Resolution tells the rendering layer what to do with a path.
// Either Redirect is set, or View is set together with an optional TripID.
type Resolution struct {
	View     View
	TripID   string
	Redirect string
}

type route struct {
	view      View
	protected bool
}

// Router holds the routing table of the application.
type Router struct {
	guard *Guard
	exact map[string]route
}

func New(guard *Guard) *Router {
	return &Router{
		guard: guard,
		exact: map[string]route{
			PathLogin:   {view: ViewLogin},
			PathTrips:   {view: ViewTripList, protected: true},
			PathTripNew: {view: ViewTripForm, protected: true},
		},
	}
}

// Resolve maps path to a view, running the guard for protected routes.
// Unknown paths go to the login view, the root goes to the trip list.
func (r *Router) Resolve(path string) Resolution {
	if path != PathRoot {
		path = strings.TrimRight(path, "/")
	}

	if path == PathRoot || path == "" {
		return Resolution{Redirect: PathTrips}
	}

	if rt, ok := r.exact[path]; ok {
		return r.enter(rt, "")
	}

	if id, ok := strings.CutPrefix(path, PathTripEdit); ok && id != "" && !strings.Contains(id, "/") {
		return r.enter(route{view: ViewTripForm, protected: true}, id)
	}

	return Resolution{Redirect: PathLogin}
}

func (r *Router) enter(rt route, tripID string) Resolution {
	if rt.protected {
		if d := r.guard.Check(); !d.Allowed {
			return Resolution{Redirect: d.Redirect}
		}
	}
	return Resolution{View: rt.view, TripID: tripID}
}
