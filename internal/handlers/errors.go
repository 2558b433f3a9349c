// Package handlers implements the gateway's HTTP surface for the admin
// panel and driver portal. Success is reported only when the record store
// confirmed the operation.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amaspm/driver-management/internal/lifecycle"
	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
	"github.com/Amaspm/driver-management/internal/session"
)

// writeStoreError maps client and validation errors to HTTP answers.
// Upstream 401 also drops the gateway session: the stored credential is
// dead and the operator must log in again.
func writeStoreError(c *gin.Context, sessions *session.Store, err error) {
	var (
		invalid   *lifecycle.InvalidTransitionError
		conflict  *recordstore.ConflictError
		transport *recordstore.TransportError
		status    *recordstore.StatusError
	)
	switch {
	case errors.As(err, &invalid):
		response.Error(c, http.StatusUnprocessableEntity, invalid.Error())
	case errors.Is(err, lifecycle.ErrMissingReason), errors.Is(err, lifecycle.ErrUnknownDocument):
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, recordstore.ErrUnauthorized):
		dropSession(c.Request.Context(), sessions)
		response.Error(c, http.StatusUnauthorized, "record store rejected the session, login again")
	case errors.Is(err, recordstore.ErrNotFound):
		response.Error(c, http.StatusNotFound, "record not found")
	case errors.As(err, &conflict):
		response.Error(c, http.StatusConflict, conflict.Detail)
	case errors.As(err, &transport):
		response.Error(c, http.StatusBadGateway, "record store unreachable")
	case errors.As(err, &status):
		code := status.Code
		if code < 400 || code > 599 {
			code = http.StatusBadGateway
		}
		msg := status.Detail
		if msg == "" {
			msg = "record store error"
		}
		response.Error(c, code, msg)
	default:
		response.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func dropSession(ctx context.Context, sessions *session.Store) {
	if sessions == nil {
		return
	}
	if jti := middleware.SessionJTIFrom(ctx); jti != "" {
		_ = sessions.Delete(ctx, jti)
	}
}
