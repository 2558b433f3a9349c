// Context keys and getters for request id, admin actor and the record-store
// credential resolved by the auth middleware.
package middleware

import (
	"context"

	"github.com/Amaspm/driver-management/internal/recordstore"
)

type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeyActor      contextKey = "actor"
	ContextKeySessionJTI contextKey = "session_jti"
	ContextKeyCredential contextKey = "credential"
)

// RequestIDFrom returns the X-Request-ID for the current request.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// ActorFrom returns the admin username behind the session.
func ActorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyActor).(string); ok {
		return v
	}
	return ""
}

// SessionJTIFrom returns the session id set by the auth middleware.
func SessionJTIFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeySessionJTI).(string); ok {
		return v
	}
	return ""
}

// CredentialFrom returns the record-store credential for this request. Zero
// credential means the request was not authenticated.
func CredentialFrom(ctx context.Context) recordstore.Credential {
	if v, ok := ctx.Value(ContextKeyCredential).(recordstore.Credential); ok {
		return v
	}
	return recordstore.Credential{}
}
