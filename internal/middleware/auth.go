package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
	"github.com/Amaspm/driver-management/internal/security"
	"github.com/Amaspm/driver-management/internal/session"
)

const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// RequireAdmin validates the gateway session token and resolves the
// record-store credential behind it into the request context. A missing or
// expired session answers 401, which the front-end treats as forced
// re-login.
func RequireAdmin(tokens *security.TokenManager, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderAuthorization))
		if raw == "" || !strings.HasPrefix(raw, BearerPrefix) {
			response.AbortWithError(c, http.StatusUnauthorized, "missing Authorization: Bearer <token>")
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(raw, BearerPrefix))
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "invalid or expired session token")
			return
		}

		upstreamToken, err := sessions.Get(c.Request.Context(), claims.ID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				response.AbortWithError(c, http.StatusUnauthorized, "session expired, login again")
				return
			}
			response.AbortWithError(c, http.StatusServiceUnavailable, "session store unavailable")
			return
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, ContextKeyActor, claims.Username)
		ctx = context.WithValue(ctx, ContextKeySessionJTI, claims.ID)
		ctx = context.WithValue(ctx, ContextKeyCredential, recordstore.Credential{Token: upstreamToken})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
