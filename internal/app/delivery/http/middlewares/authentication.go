package middlewares

import (
	"errors"
	"net/http"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/utils"
)

// Authenticate gates protected routes on a usable stored session, refreshing
// it first when the access token has expired.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, err := m.AuthUsecase.CheckAuthentication(r.Context(), constvars.AuthContextUser)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(errors.New("no usable session")))
			return
		}
		next.ServeHTTP(w, r)
	})
}
