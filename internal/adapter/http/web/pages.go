package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/controller"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/gin-gonic/gin"
)

// navigation records where a controller asked to go during one request.
type navigation struct {
	to string
}

func (n *navigation) Navigate(path string) { n.to = path }

// follow redirects when the controller navigated and reports whether it did.
func (n *navigation) follow(c *gin.Context, status int) bool {
	if n.to == "" {
		return false
	}
	c.Redirect(status, n.to)
	return true
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "available",
		"system_info": gin.H{
			"service-name": serviceName,
			"version":      version,
		},
	})
}

// resolve handles the root and every unknown path through the routing table.
func (s *Server) resolve(c *gin.Context) {
	if _, ok := s.enter(c); ok {
		c.Redirect(http.StatusFound, router.PathLogin)
	}
}

// enter resolves the request path and redirects when the table or the guard says so.
func (s *Server) enter(c *gin.Context) (router.Resolution, bool) {
	res := s.routes.Resolve(c.Request.URL.Path)
	if res.Redirect != "" {
		c.Redirect(http.StatusFound, res.Redirect)
		return res, false
	}
	return res, true
}

func (s *Server) loginPage(c *gin.Context) {
	if _, ok := s.enter(c); !ok {
		return
	}
	ctrl := controller.NewLogin(s.session, &navigation{}, s.log)
	c.HTML(http.StatusOK, "login.html", loginView{State: ctrl.State()})
}

func (s *Server) login(c *gin.Context) {
	ctx := wrap.WithAction(c.Request.Context(), "web_login")

	nav := &navigation{}
	ctrl := controller.NewLogin(s.session, nav, s.log)
	ctrl.SetUsername(c.PostForm("username"))
	ctrl.SetPassword(c.PostForm("password"))

	if err := ctrl.Submit(ctx); err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, controller.ErrSubmitDisabled) {
			status = http.StatusBadRequest
		}
		c.HTML(status, "login.html", loginView{State: ctrl.State()})
		return
	}
	nav.follow(c, http.StatusSeeOther)
}

func (s *Server) logout(c *gin.Context) {
	nav := &navigation{}
	controller.NewTripList(s.trips, s.session, nav, s.log).Logout()
	nav.follow(c, http.StatusSeeOther)
}

func (s *Server) tripList(c *gin.Context) {
	if _, ok := s.enter(c); !ok {
		return
	}
	ctx := c.Request.Context()

	ctrl := controller.NewTripList(s.trips, s.session, &navigation{}, s.log)
	if err := ctrl.Init(ctx); err == nil {
		if term, ok := c.GetQuery("q"); ok {
			_ = ctrl.Search(ctx, term)
		}
	}

	c.HTML(http.StatusOK, "trips.html", listView{State: ctrl.State()})
}

func (s *Server) confirmDelete(c *gin.Context) {
	id, ok := tripIDParam(c)
	if !ok {
		return
	}

	ctrl := controller.NewTripList(s.trips, s.session, &navigation{}, s.log)
	_ = ctrl.Init(c.Request.Context())
	ctrl.RequestDelete(id)

	st := ctrl.State()
	pending := &models.Trip{ID: &id}
	for _, t := range st.Trips {
		if t.IDValue() == id {
			pending = &t
			break
		}
	}

	c.HTML(http.StatusOK, "trips.html", listView{
		State:          st,
		Pending:        pending,
		ConfirmMessage: controller.MsgDeleteConfirm,
	})
}

func (s *Server) deleteTrip(c *gin.Context) {
	id, ok := tripIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	ctrl := controller.NewTripList(s.trips, s.session, &navigation{}, s.log)
	ctrl.RequestDelete(id)
	if err := ctrl.ConfirmDelete(ctx); err != nil {
		page := controller.NewTripList(s.trips, s.session, &navigation{}, s.log)
		_ = page.Init(ctx)
		st := page.State()
		st.Error = ctrl.State().Error
		c.HTML(http.StatusBadGateway, "trips.html", listView{State: st})
		return
	}

	c.Redirect(http.StatusSeeOther, router.PathTrips)
}

func (s *Server) tripForm(c *gin.Context) {
	res, ok := s.enter(c)
	if !ok {
		return
	}

	nav := &navigation{}
	ctrl := controller.NewTripForm(s.trips, nav, s.log, res.TripID)
	_ = ctrl.Init(c.Request.Context())
	if nav.follow(c, http.StatusFound) {
		return
	}

	c.HTML(http.StatusOK, "form.html", newFormView(ctrl.State(), c.Request.URL.Path))
}

func (s *Server) saveTrip(c *gin.Context) {
	ctx := c.Request.Context()

	nav := &navigation{}
	ctrl := controller.NewTripForm(s.trips, nav, s.log, c.Param("id"))
	_ = ctrl.Prepare(ctx)
	if nav.follow(c, http.StatusSeeOther) {
		return
	}

	ctrl.SetDestination(c.PostForm(controller.FieldDestination))
	ctrl.SetStartDate(c.PostForm(controller.FieldStartDate))
	ctrl.SetBudget(c.PostForm(controller.FieldBudget))
	ctrl.SetTravelStyle(c.PostForm(controller.FieldTravelStyle))
	ctrl.SetGroupSize(c.PostForm(controller.FieldGroupSize))
	ctrl.SetRequiresVisa(c.PostForm(controller.FieldRequiresVisa) == "true")

	err := ctrl.Submit(ctx)
	if err == nil {
		nav.follow(c, http.StatusSeeOther)
		return
	}

	status := http.StatusBadGateway
	if errors.Is(err, controller.ErrInvalidForm) {
		status = http.StatusUnprocessableEntity
	}
	c.HTML(status, "form.html", newFormView(ctrl.State(), c.Request.URL.Path))
}

func tripIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, router.PathTrips)
		return 0, false
	}
	return id, true
}
