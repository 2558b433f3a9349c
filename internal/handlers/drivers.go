package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amaspm/driver-management/internal/audit"
	"github.com/Amaspm/driver-management/internal/domain"
	"github.com/Amaspm/driver-management/internal/events"
	"github.com/Amaspm/driver-management/internal/lifecycle"
	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/presence"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
	"github.com/Amaspm/driver-management/internal/session"
)

// Drivers serves the admin panel's driver list and every lifecycle action.
type Drivers struct {
	records  *recordstore.Client
	presence *presence.Poller
	audit    *audit.Store
	events   *events.Publisher
	sessions *session.Store
	logger   *zap.Logger
}

func NewDrivers(records *recordstore.Client, poller *presence.Poller, auditStore *audit.Store, publisher *events.Publisher, sessions *session.Store, logger *zap.Logger) *Drivers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Drivers{
		records:  records,
		presence: poller,
		audit:    auditStore,
		events:   publisher,
		sessions: sessions,
		logger:   logger,
	}
}

func driverID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid driver id")
		return 0, false
	}
	return id, true
}

// List returns every driver merged with the latest presence snapshot.
func (h *Drivers) List(c *gin.Context) {
	ctx := c.Request.Context()
	drivers, err := h.records.ListDrivers(ctx, middleware.CredentialFrom(ctx))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	merged := presence.Merge(drivers, h.presence.Snapshot())
	response.Success(c, http.StatusOK, "drivers retrieved", merged)
}

func (h *Drivers) Get(c *gin.Context) {
	id, ok := driverID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	driver, err := h.records.GetDriver(ctx, middleware.CredentialFrom(ctx), id)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	merged := presence.Merge([]domain.Driver{driver}, h.presence.Snapshot())
	response.Success(c, http.StatusOK, "driver retrieved", merged[0])
}

// transitionRequest is the generic status editor's body. Category, documents
// and reason are read only when status is rejected.
type transitionRequest struct {
	Status    domain.Status            `json:"status" binding:"required"`
	Category  domain.RejectionCategory `json:"category"`
	Documents []domain.DocumentKind    `json:"documents"`
	Reason    string                   `json:"reason"`
}

// UpdateStatus is the generic editor: any admissible target, one endpoint.
func (h *Drivers) UpdateStatus(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == domain.StatusRejected && !req.Category.Valid() {
		response.Error(c, http.StatusBadRequest, "invalid rejection category")
		return
	}
	h.transition(c, lifecycle.Input{
		Target:    req.Status,
		Category:  req.Category,
		Documents: req.Documents,
		Reason:    req.Reason,
	})
}

// Approve is the quick action on a pending application.
func (h *Drivers) Approve(c *gin.Context) {
	h.transition(c, lifecycle.Input{Target: domain.StatusActive})
}

type rejectRequest struct {
	Category  domain.RejectionCategory `json:"category" binding:"required"`
	Documents []domain.DocumentKind    `json:"documents"`
	Reason    string                   `json:"reason"`
}

// Reject rejects an application with a structured reason.
func (h *Drivers) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Category.Valid() {
		response.Error(c, http.StatusBadRequest, "invalid rejection category")
		return
	}
	h.transition(c, lifecycle.Input{
		Target:    domain.StatusRejected,
		Category:  req.Category,
		Documents: req.Documents,
		Reason:    req.Reason,
	})
}

func (h *Drivers) Suspend(c *gin.Context) {
	h.transition(c, lifecycle.Input{Target: domain.StatusSuspended})
}

// transition runs the shared flow: fetch current status, validate against
// the transition table, submit, audit the true outcome, publish the event.
func (h *Drivers) transition(c *gin.Context, in lifecycle.Input) {
	id, ok := driverID(c)
	if !ok {
		return
	}
	in.DriverID = id

	ctx := c.Request.Context()
	cred := middleware.CredentialFrom(ctx)

	current, err := h.records.GetDriver(ctx, cred, id)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}

	t, err := lifecycle.Evaluate(current.Status, in)
	if err != nil {
		// Nothing was submitted upstream, so nothing to audit.
		writeStoreError(c, h.sessions, err)
		return
	}

	updated, applyErr := h.records.ApplyTransition(ctx, cred, t)

	entry := audit.Entry{
		Actor:      middleware.ActorFrom(ctx),
		DriverID:   id,
		Action:     audit.ActionTransition,
		FromStatus: current.Status.String(),
		ToStatus:   t.Status.String(),
		Reason:     t.Reason,
		Succeeded:  applyErr == nil,
	}
	if applyErr != nil {
		entry.Detail = applyErr.Error()
	}
	if err := h.audit.Record(ctx, entry); err != nil {
		h.logger.Warn("audit record failed", zap.Int64("driver_id", id), zap.Error(err))
	}

	if applyErr != nil {
		writeStoreError(c, h.sessions, applyErr)
		return
	}

	h.events.DriverEvent(ctx, transitionEvent(current.Status, t.Status), id)
	response.Success(c, http.StatusOK, "driver status updated", updated)
}

func transitionEvent(from, to domain.Status) string {
	switch to {
	case domain.StatusActive:
		if from == domain.StatusPending {
			return events.DriverAccepted
		}
		return events.DriverActivated
	case domain.StatusSuspended:
		return events.DriverSuspended
	case domain.StatusRejected:
		return events.DriverRejected
	default:
		return events.DriverUpdated
	}
}

// documentsRequest carries re-uploaded document photos for a rejected
// driver. Only the provided fields are patched.
type documentsRequest struct {
	FotoKTP        *string `json:"foto_ktp"`
	FotoSIM        *string `json:"foto_sim"`
	FotoBPJS       *string `json:"foto_bpjs"`
	FotoSertifikat *string `json:"foto_sertifikat"`
	FotoProfil     *string `json:"foto_profil"`
}

// UpdateDocuments lets a rejected driver resubmit the flagged documents.
func (h *Drivers) UpdateDocuments(c *gin.Context) {
	id, ok := driverID(c)
	if !ok {
		return
	}
	var req documentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]any{}
	for name, v := range map[string]*string{
		"foto_ktp":        req.FotoKTP,
		"foto_sim":        req.FotoSIM,
		"foto_bpjs":       req.FotoBPJS,
		"foto_sertifikat": req.FotoSertifikat,
		"foto_profil":     req.FotoProfil,
	} {
		if v != nil {
			fields[name] = *v
		}
	}
	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "no documents provided")
		return
	}

	ctx := c.Request.Context()
	updated, err := h.records.UpdateDriver(ctx, middleware.CredentialFrom(ctx), id, fields)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	h.events.DriverEvent(ctx, events.DriverUpdated, id)
	response.Success(c, http.StatusOK, "documents updated", updated)
}

// Delete removes the driver and its auth account. Referential conflicts from
// the store are passed through verbatim so the operator sees what blocks it.
func (h *Drivers) Delete(c *gin.Context) {
	id, ok := driverID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	err := h.records.DeleteDriver(ctx, middleware.CredentialFrom(ctx), id)

	entry := audit.Entry{
		Actor:     middleware.ActorFrom(ctx),
		DriverID:  id,
		Action:    audit.ActionDelete,
		Succeeded: err == nil,
	}
	if err != nil {
		entry.Detail = err.Error()
	}
	if recErr := h.audit.Record(ctx, entry); recErr != nil {
		h.logger.Warn("audit record failed", zap.Int64("driver_id", id), zap.Error(recErr))
	}

	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	h.events.DriverEvent(ctx, events.DriverDeleted, id)
	response.Success(c, http.StatusOK, "driver deleted", nil)
}

type createDriverRequest struct {
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=8"`
	Status   domain.Status `json:"status"`
}

// Create provisions a driver auth account plus an empty record.
func (h *Drivers) Create(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != "" && !req.Status.Valid() {
		response.Error(c, http.StatusBadRequest, "invalid status")
		return
	}

	ctx := c.Request.Context()
	driver, err := h.records.CreateDriver(ctx, middleware.CredentialFrom(ctx), recordstore.CreateDriverAccount{
		Email:    req.Email,
		Password: req.Password,
		Status:   req.Status,
	})
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	h.events.DriverEvent(ctx, events.DriverCreated, driver.IDDriver)
	response.Success(c, http.StatusCreated, "driver account created", driver)
}

type bulkActionRequest struct {
	DriverIDs []int64 `json:"driver_ids" binding:"required,min=1"`
}

func (h *Drivers) bulk(c *gin.Context, action func(ids []int64) (recordstore.BulkResult, error), eventType string) {
	var req bulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := action(req.DriverIDs)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	ctx := c.Request.Context()
	for _, id := range req.DriverIDs {
		h.events.DriverEvent(ctx, eventType, id)
	}
	response.Success(c, http.StatusOK, result.Message, nil)
}

func (h *Drivers) BulkActivate(c *gin.Context) {
	ctx := c.Request.Context()
	cred := middleware.CredentialFrom(ctx)
	h.bulk(c, func(ids []int64) (recordstore.BulkResult, error) {
		return h.records.BulkActivate(ctx, cred, ids)
	}, events.DriverActivated)
}

func (h *Drivers) BulkSuspend(c *gin.Context) {
	ctx := c.Request.Context()
	cred := middleware.CredentialFrom(ctx)
	h.bulk(c, func(ids []int64) (recordstore.BulkResult, error) {
		return h.records.BulkSuspend(ctx, cred, ids)
	}, events.DriverSuspended)
}

func (h *Drivers) BulkAccept(c *gin.Context) {
	ctx := c.Request.Context()
	cred := middleware.CredentialFrom(ctx)
	h.bulk(c, func(ids []int64) (recordstore.BulkResult, error) {
		return h.records.BulkAccept(ctx, cred, ids)
	}, events.DriverAccepted)
}

// AuditTrail returns the gateway's own record of mutations for one driver.
func (h *Drivers) AuditTrail(c *gin.Context) {
	id, ok := driverID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.audit.ListByDriver(c.Request.Context(), id, limit)
	if err != nil {
		h.logger.Error("audit trail query failed", zap.Int64("driver_id", id), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "audit trail unavailable")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	response.Success(c, http.StatusOK, "audit trail retrieved", entries)
}
