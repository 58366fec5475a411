package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/yourarttoy/arttoy-backend/api/responses"
	pkgAuth "github.com/yourarttoy/arttoy-backend/pkg/auth"
	"github.com/yourarttoy/arttoy-backend/pkg/config"
	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"

	"github.com/google/uuid"
)

// UserLoader resolves a token subject to the stored user record.
type UserLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Auth validates a bearer token and seeds the request context with the
// caller's principal. The role comes from the database, not the token, so
// demoting a user takes effect on their next request.
func Auth(cfg config.JWTConfig, users UserLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authorized to access this route"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Not authorized to access this route"))
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			principal := pkgAuth.Principal{UserID: user.ID, Role: user.Role}
			ctx := WithPrincipal(r.Context(), principal)

			if logg != nil {
				ctx = logg.WithUserID(ctx, principal.UserID.String())
				ctx = logg.WithActorRole(ctx, principal.Role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
