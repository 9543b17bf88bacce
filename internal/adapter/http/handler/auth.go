package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/validator"
)

type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
}

type Auth struct {
	auth AuthService
	l    logger.Logger
}

func NewAuth(service AuthService, l logger.Logger) *Auth {
	return &Auth{
		auth: service,
		l:    l,
	}
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges a username and password for a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credentials"
// @Success      200      {object}  dto.LoginResponse
// @Failure      401      {object}  map[string]string
// @Failure      422      {object}  map[string]any
// @Failure      429      {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "login_user")

	req := &dto.LoginRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateLogin(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	session, err := h.auth.Login(ctx, req.ToModel())
	if err != nil {
		h.l.Warn(wrap.ErrorCtx(ctx, err), "failed to login user", "error", err.Error())
		serviceErrorResponse(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, dto.NewLoginResponse(session), nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
