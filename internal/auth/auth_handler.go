package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/bootstrap"
	"github.com/deployappsa/absensi/internal/session"
	"github.com/deployappsa/absensi/internal/shared/apperror"
	"github.com/deployappsa/absensi/internal/shared/response"
)

type Handler struct {
	service Service
	codec   *session.CookieCodec
	audit   bootstrap.AuditLogger
}

func NewHandler(service Service, codec *session.CookieCodec, audit bootstrap.AuditLogger) *Handler {
	return &Handler{service: service, codec: codec, audit: audit}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, sess, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := h.codec.Write(c.Writer, sess.ID, time.Until(sess.ExpiresAt)); err != nil {
		writeServiceError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "auth.login",
		Message: "user logged in",
		Meta:    map[string]any{"user_id": resp.ID, "username": resp.Username},
	})
	response.Success(c, http.StatusOK, gin.H{"user": resp})
}

func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")

	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		writeServiceError(c, err)
		return
	}

	h.codec.Clear(c.Writer)
	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "auth.logout",
		Message: "user logged out",
		Meta:    map[string]any{"user_id": c.GetUint("user_id")},
	})
	response.Success(c, http.StatusOK, gin.H{"success": true})
}
