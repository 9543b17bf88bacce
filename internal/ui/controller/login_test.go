package controller

import (
	"testing"

	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_CanSubmitRequiresBothFields(t *testing.T) {
	c := NewLogin(&fakeSession{}, &recorder{}, logger.Discard())
	assert.False(t, c.CanSubmit())

	c.SetUsername("admin")
	assert.False(t, c.CanSubmit())

	c.SetPassword("password")
	assert.True(t, c.CanSubmit())

	c.SetUsername("")
	assert.False(t, c.CanSubmit())
}

func TestLogin_SubmitDisabledIsNoop(t *testing.T) {
	sess := &fakeSession{}
	c := NewLogin(sess, &recorder{}, logger.Discard())
	c.SetUsername("admin")

	err := c.Submit(t.Context())
	assert.ErrorIs(t, err, ErrSubmitDisabled)
	assert.Zero(t, sess.loginCall)
}

func TestLogin_SuccessNavigatesToTrips(t *testing.T) {
	sess := &fakeSession{}
	nav := &recorder{}
	c := NewLogin(sess, nav, logger.Discard())
	c.SetUsername("admin")
	c.SetPassword("password")

	require.NoError(t, c.Submit(t.Context()))
	assert.Equal(t, []string{router.PathTrips}, nav.paths)
	assert.Empty(t, c.State().Error)
	assert.True(t, sess.loggedIn)
}

func TestLogin_FailureShowsMessage(t *testing.T) {
	sess := &fakeSession{loginErr: errBackend}
	nav := &recorder{}
	c := NewLogin(sess, nav, logger.Discard())
	c.SetUsername("admin")
	c.SetPassword("wrong")

	err := c.Submit(t.Context())
	assert.ErrorIs(t, err, errBackend)

	st := c.State()
	assert.False(t, st.Loading)
	assert.Equal(t, MsgLoginFailed, st.Error)
	assert.Empty(t, nav.paths)
	assert.False(t, sess.loggedIn)

	// the user can try again
	assert.True(t, c.CanSubmit())
	sess.loginErr = nil
	require.NoError(t, c.Submit(t.Context()))
	assert.Empty(t, c.State().Error)
	assert.Equal(t, 2, sess.loginCall)
}
