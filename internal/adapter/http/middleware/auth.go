package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

var errBadAuthHeader = errors.New("invalid Authorization header format")

// Auth validates a bearer token when one is sent and puts the user into the context.
// Requests without the header continue anonymously; RequireAuth rejects them where needed.
func (h *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := wrap.WithAction(r.Context(), "authenticate")

		token, err := extractBearerToken(header)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}

		user, err := h.auth.Authenticate(ctx, token)
		if err != nil || user == nil {
			h.log.Warn(wrap.ErrorCtx(ctx, err), "failed to authenticate user", "error", errString(err))
			errorResponse(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx = wrap.WithUsername(r.Context(), user.Username)
		next.ServeHTTP(w, r.WithContext(models.WithUser(ctx, user)))
	})
}

// RequireAuth allows only requests that carried a valid token.
func (h *Middleware) RequireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if models.UserFromContext(r.Context()) == nil {
			w.Header().Set("WWW-Authenticate", types.TokenType)
			errorResponse(w, http.StatusUnauthorized, "authorization required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], types.TokenType) || strings.TrimSpace(parts[1]) == "" {
		return "", errBadAuthHeader
	}
	return strings.TrimSpace(parts[1]), nil
}

func errString(err error) string {
	if err == nil {
		return "user not found"
	}
	return err.Error()
}
