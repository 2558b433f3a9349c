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

// Training serves the authoring endpoints for training modules, their
// contents and quizzes. Passthrough CRUD, contents and quizzes filterable
// by module_id.
type Training struct {
	records  *recordstore.Client
	sessions *session.Store
}

func NewTraining(records *recordstore.Client, sessions *session.Store) *Training {
	return &Training{records: records, sessions: sessions}
}

func moduleFilter(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Query("module_id"), 10, 64)
	return id
}

func (h *Training) ListModules(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := h.records.ListTrainingModules(ctx, middleware.CredentialFrom(ctx))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training modules retrieved", out)
}

func (h *Training) GetModule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.GetTrainingModule(ctx, middleware.CredentialFrom(ctx), id)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training module retrieved", out)
}

func (h *Training) CreateModule(c *gin.Context) {
	var req domain.TrainingModule
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.CreateTrainingModule(ctx, middleware.CredentialFrom(ctx), req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "training module created", out)
}

func (h *Training) UpdateModule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.TrainingModule
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.UpdateTrainingModule(ctx, middleware.CredentialFrom(ctx), id, req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training module updated", out)
}

func (h *Training) DeleteModule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.records.DeleteTrainingModule(ctx, middleware.CredentialFrom(ctx), id); err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training module deleted", nil)
}

func (h *Training) ListContents(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := h.records.ListTrainingContents(ctx, middleware.CredentialFrom(ctx), moduleFilter(c))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training contents retrieved", out)
}

func (h *Training) CreateContent(c *gin.Context) {
	var req domain.TrainingContent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.CreateTrainingContent(ctx, middleware.CredentialFrom(ctx), req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "training content created", out)
}

func (h *Training) UpdateContent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.TrainingContent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.UpdateTrainingContent(ctx, middleware.CredentialFrom(ctx), id, req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training content updated", out)
}

func (h *Training) DeleteContent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.records.DeleteTrainingContent(ctx, middleware.CredentialFrom(ctx), id); err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training content deleted", nil)
}

func (h *Training) ListQuizzes(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := h.records.ListTrainingQuizzes(ctx, middleware.CredentialFrom(ctx), moduleFilter(c))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training quizzes retrieved", out)
}

func (h *Training) CreateQuiz(c *gin.Context) {
	var req domain.TrainingQuiz
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.CreateTrainingQuiz(ctx, middleware.CredentialFrom(ctx), req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "training quiz created", out)
}

func (h *Training) UpdateQuiz(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.TrainingQuiz
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()
	out, err := h.records.UpdateTrainingQuiz(ctx, middleware.CredentialFrom(ctx), id, req)
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training quiz updated", out)
}

func (h *Training) DeleteQuiz(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.records.DeleteTrainingQuiz(ctx, middleware.CredentialFrom(ctx), id); err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "training quiz deleted", nil)
}
