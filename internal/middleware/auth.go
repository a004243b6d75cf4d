// Package middleware provides authentication, logging and rate limiting
// middleware for the application.
package middleware

import (
	"context"
	"errors"
	"strings"

	"bloglist/internal/auth"
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const identityKey = "identity"

var authFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bloglist_auth_failures_total",
	Help: "Rejected requests on protected routes, by reason.",
}, []string{"reason"})

// UserResolver resolves a token subject to a live user. Implemented by
// repository.UserRepository.
type UserResolver interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// RequireAuth returns middleware enforcing a valid bearer token on protected
// routes. The token subject must resolve to a live user; a token for a user
// that no longer exists is rejected like any other invalid token. On success
// the resolved identity is stored in the request locals for handlers to pass
// explicitly into service calls.
func RequireAuth(tokens *auth.TokenService, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			authFailures.WithLabelValues("missing").Inc()
			return models.RespondWithError(c, models.NewUnauthorizedError("token missing"))
		}

		scheme, tokenString, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || tokenString == "" {
			authFailures.WithLabelValues("missing").Inc()
			return models.RespondWithError(c, models.NewUnauthorizedError("token missing"))
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			authFailures.WithLabelValues("invalid").Inc()
			return models.RespondWithError(c, err)
		}

		user, err := users.GetByID(c.UserContext(), identity.UserID)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
				// A valid signature over a deleted user is still an auth
				// failure, not a server error.
				authFailures.WithLabelValues("unknown_user").Inc()
				return models.RespondWithError(c, models.NewUnauthorizedError("token invalid"))
			}
			return models.RespondWithError(c, err)
		}

		c.Locals(identityKey, &auth.Identity{UserID: user.ID, Username: user.Username})
		c.SetUserContext(context.WithValue(c.UserContext(), UsernameKey, user.Username))
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireAuth, or nil when the
// request is unauthenticated.
func CurrentIdentity(c *fiber.Ctx) *auth.Identity {
	identity, _ := c.Locals(identityKey).(*auth.Identity)
	return identity
}
