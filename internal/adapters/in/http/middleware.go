package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/ports"
)

const (
	ctxActorID   = "actorID"
	ctxActorKind = "actorKind"
)

// Authenticator guards route groups with bearer token checks.
type Authenticator struct {
	issuer ports.TokenIssuer
}

// NewAuthenticator creates an Authenticator over the given token issuer.
func NewAuthenticator(issuer ports.TokenIssuer) *Authenticator {
	return &Authenticator{issuer: issuer}
}

// Require rejects requests that lack a valid bearer token for one of the
// given actor kinds. On success the actor's ID and kind are stored on the
// request context for handlers to read.
func (a *Authenticator) Require(kinds ...ports.ActorKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			subject, kind, err := a.issuer.Parse(strings.TrimPrefix(header, prefix))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			if !kindAllowed(kind, kinds) {
				return ctx.JSON(http.StatusForbidden, errorBody{
					Code:    http.StatusForbidden,
					Message: "insufficient privileges",
				})
			}

			ctx.Set(ctxActorID, subject)
			ctx.Set(ctxActorKind, string(kind))
			return next(ctx)
		}
	}
}

func kindAllowed(kind ports.ActorKind, allowed []ports.ActorKind) bool {
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}

// actorUUID reads the authenticated actor's ID set by the middleware.
func actorUUID(ctx echo.Context) (kernel.UUID, error) {
	raw, _ := ctx.Get(ctxActorID).(string)
	return kernel.UUIDFromString(raw)
}

// actorKind reads the authenticated actor's kind set by the middleware.
func actorKind(ctx echo.Context) string {
	raw, _ := ctx.Get(ctxActorKind).(string)
	return raw
}
