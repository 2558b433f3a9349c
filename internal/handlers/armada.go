package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Amaspm/driver-management/internal/domain"
	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
	"github.com/Amaspm/driver-management/internal/session"
)

// Armada is a thin passthrough over the store's fleet endpoints; the store
// validates everything.
type Armada struct {
	records  *recordstore.Client
	sessions *session.Store
}

func NewArmada(records *recordstore.Client, sessions *session.Store) *Armada {
	return &Armada{records: records, sessions: sessions}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Armada) List(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := h.records.ListArmada(ctx, middleware.CredentialFrom(ctx))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "armada retrieved", out)
}

func (h *Armada) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.GetArmada(ctx, middleware.CredentialFrom(ctx), id)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "armada retrieved", out)
}

func (h *Armada) Create(c *gin.Context) {
	var req domain.Armada
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.CreateArmada(ctx, middleware.CredentialFrom(ctx), req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "armada created", out)
}

func (h *Armada) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.Armada
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.UpdateArmada(ctx, middleware.CredentialFrom(ctx), id, req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "armada updated", out)
}

func (h *Armada) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.records.DeleteArmada(ctx, middleware.CredentialFrom(ctx), id); err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "armada deleted", nil)
}
