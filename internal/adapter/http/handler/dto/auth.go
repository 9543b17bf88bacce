package dto

import (
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToModel() models.Credentials {
	return models.Credentials{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}
}

// LoginResponse mirrors models.Session on the wire.
type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
}

func NewLoginResponse(s *models.Session) LoginResponse {
	return LoginResponse{Token: s.Token, Type: s.Type, Username: s.Username}
}

func ValidateLogin(v *validator.Validator, req *LoginRequest) {
	v.Check(strings.TrimSpace(req.Username) != "", "username", "El username es obligatorio")
	v.Check(req.Password != "", "password", "La contraseña es obligatoria")
}
