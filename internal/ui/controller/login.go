package controller

import (
	"context"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

type LoginState struct {
	Username string
	Password string
	Loading  bool
	Error    string
}

type Login struct {
	state LoginState

	session Authenticator
	nav     Navigator
	log     logger.Logger
}

func NewLogin(session Authenticator, nav Navigator, log logger.Logger) *Login {
	return &Login{
		session: session,
		nav:     nav,
		log:     log,
	}
}

func (c *Login) State() LoginState {
	return c.state
}

func (c *Login) SetUsername(username string) {
	c.state.Username = username
}

func (c *Login) SetPassword(password string) {
	c.state.Password = password
}

// CanSubmit is false while a login is in flight or a field is empty.
func (c *Login) CanSubmit() bool {
	return !c.state.Loading && c.state.Username != "" && c.state.Password != ""
}

// Submit logs in and moves to the trip list.
// A rejected login keeps the view and shows MsgLoginFailed.
func (c *Login) Submit(ctx context.Context) error {
	if !c.CanSubmit() {
		return ErrSubmitDisabled
	}
	ctx = wrap.WithUsername(wrap.WithAction(ctx, "login_submit"), c.state.Username)

	c.state.Loading = true
	c.state.Error = ""

	_, err := c.session.Login(ctx, models.Credentials{
		Username: c.state.Username,
		Password: c.state.Password,
	})
	if err != nil {
		c.state.Loading = false
		c.state.Error = MsgLoginFailed
		c.log.Warn(wrap.ErrorCtx(ctx, err), "login failed", "error", err.Error())
		return err
	}

	c.nav.Navigate(router.PathTrips)
	return nil
}
