package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amaspm/driver-management/internal/audit"
	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
	"github.com/Amaspm/driver-management/internal/session"
)

// Admin serves account-maintenance endpoints: the sync report and orphaned
// auth-account cleanup.
type Admin struct {
	records  *recordstore.Client
	audit    *audit.Store
	sessions *session.Store
	logger   *zap.Logger
}

func NewAdmin(records *recordstore.Client, auditStore *audit.Store, sessions *session.Store, logger *zap.Logger) *Admin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Admin{records: records, audit: auditStore, sessions: sessions, logger: logger}
}

func (h *Admin) CheckSync(c *gin.Context) {
	ctx := c.Request.Context()
	report, err := h.records.CheckSync(ctx, middleware.CredentialFrom(ctx))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "sync report generated", report)
}

// CleanupUsers deletes orphaned auth accounts upstream. Destructive, so the
// outcome lands in the audit trail either way.
func (h *Admin) CleanupUsers(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.records.CleanupOrphanedUsers(ctx, middleware.CredentialFrom(ctx))

	entry := audit.Entry{
		Actor:     middleware.ActorFrom(ctx),
		Action:    audit.ActionCleanup,
		Succeeded: err == nil,
	}
	if err != nil {
		entry.Detail = err.Error()
	}
	if recErr := h.audit.Record(ctx, entry); recErr != nil {
		h.logger.Warn("audit record failed", zap.Error(recErr))
	}

	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "orphaned users cleaned up", result)
}
