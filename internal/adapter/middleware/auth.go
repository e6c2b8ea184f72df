package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"aidbridge-backend/internal/domain/actor"
)

const actorContextKey = "aidbridge.actor"

// ActorAuth verifies a Bearer HS256 token minted by the external auth
// service and stashes the resolved actor in the request context. The
// workflow engine trusts the resolved {id, role} verbatim.
func ActorAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "error": "missing bearer token",
				})
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "error": "invalid token",
				})
			}

			sub, _ := claims["sub"].(string)
			roleStr, _ := claims["role"].(string)
			role := actor.Role(roleStr)
			if sub == "" || !role.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "error": "token missing subject or role",
				})
			}

			SetActor(c, actor.Actor{ID: sub, Role: role})
			return next(c)
		}
	}
}

// SetActor stores a resolved actor on the request context.
func SetActor(c echo.Context, a actor.Actor) { c.Set(actorContextKey, a) }

// ActorFromContext returns the actor resolved by ActorAuth for this request.
func ActorFromContext(c echo.Context) (actor.Actor, bool) {
	a, ok := c.Get(actorContextKey).(actor.Actor)
	return a, ok
}
