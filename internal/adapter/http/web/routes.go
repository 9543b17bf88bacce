package web

import "github.com/Temutjin2k/solotrip-connect/internal/ui/router"

func (s *Server) setupRoutes() {
	r := s.engine

	r.GET("/health", s.health)

	// Views. Each resolves its path through the routing table.
	r.GET(router.PathRoot, s.resolve)
	r.GET(router.PathLogin, s.loginPage)
	r.GET(router.PathTrips, s.tripList)
	r.GET(router.PathTripNew, s.tripForm)
	r.GET(router.PathTripEdit+":id", s.tripForm)

	// Actions.
	r.POST(router.PathLogin, s.login)
	r.POST("/logout", s.logout)

	protected := r.Group("/", s.requireSession())
	protected.POST(router.PathTripNew, s.saveTrip)
	protected.POST(router.PathTripEdit+":id", s.saveTrip)
	protected.GET("/trips/delete/:id", s.confirmDelete)
	protected.POST("/trips/delete/:id", s.deleteTrip)

	r.NoRoute(s.resolve)
}
