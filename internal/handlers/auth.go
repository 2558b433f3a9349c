package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
	"github.com/Amaspm/driver-management/internal/security"
	"github.com/Amaspm/driver-management/internal/session"
)

// Auth exchanges admin credentials for a gateway session token. The record
// store's opaque token is held in redis only; the browser sees just the JWT.
type Auth struct {
	records  *recordstore.Client
	sessions *session.Store
	tokens   *security.TokenManager
	logger   *zap.Logger
}

func NewAuth(records *recordstore.Client, sessions *session.Store, tokens *security.TokenManager, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{records: records, sessions: sessions, tokens: tokens, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	Username  string `json:"username"`
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}
	ctx := c.Request.Context()

	cred, err := h.records.AdminLogin(ctx, req.Username, req.Password)
	if err != nil {
		writeStoreError(c, nil, err)
		return
	}

	token, jti, err := h.tokens.Issue(req.Username)
	if err != nil {
		h.logger.Error("session token issue failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "could not create session")
		return
	}
	if err := h.sessions.Save(ctx, jti, cred.Token); err != nil {
		h.logger.Error("session save failed", zap.Error(err))
		response.Error(c, http.StatusServiceUnavailable, "session store unavailable")
		return
	}

	h.logger.Info("admin login", zap.String("username", req.Username))
	response.Success(c, http.StatusOK, "login successful", loginResponse{
		Token:     token,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
		Username:  req.Username,
	})
}

// Logout invalidates the server-side session immediately; the JWT itself is
// useless once the jti mapping is gone.
func (h *Auth) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if jti := middleware.SessionJTIFrom(ctx); jti != "" {
		if err := h.sessions.Delete(ctx, jti); err != nil {
			h.logger.Warn("session delete failed", zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable, "session store unavailable")
			return
		}
	}
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Profile returns the account behind the current session.
func (h *Auth) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	profile, err := h.records.GetProfile(ctx, middleware.CredentialFrom(ctx))
	if err != nil {
		writeStoreError(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "profile retrieved", profile)
}
