package middleware

import (
	"fmt"
	"net/http"

	"github.com/yourarttoy/arttoy-backend/api/responses"
	"github.com/yourarttoy/arttoy-backend/pkg/enums"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
)

// RequireRole gates a route on the caller's role. Must run after Auth.
func RequireRole(role enums.UserRole, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authorized to access this route"))
				return
			}
			if principal.Role != role {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden,
					fmt.Sprintf("User role %s is not authorized to access this route", principal.Role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
