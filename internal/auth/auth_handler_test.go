package auth_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deployappsa/absensi/internal/auth"
	autherrors "github.com/deployappsa/absensi/internal/auth/errors"
	"github.com/deployappsa/absensi/internal/bootstrap"
	"github.com/deployappsa/absensi/internal/session"
	"github.com/deployappsa/absensi/internal/user"
)

type fakeAuthService struct {
	resp user.UserResponse
	sess session.Session
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (user.UserResponse, session.Session, error) {
	return f.resp, f.sess, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	return f.err
}

type noopAudit struct{}

func (noopAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {}

func newAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	codec := session.NewCookieCodec("test-secret-test-secret-test-32b", false)
	h := auth.NewHandler(svc, codec, noopAudit{})
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", func(c *gin.Context) {
		c.Set("session_id", "sess-1")
		c.Set("user_id", uint(1))
		h.Logout(c)
	})
	return r
}

func TestHandler_LoginSetsCookie(t *testing.T) {
	svc := &fakeAuthService{
		resp: user.UserResponse{ID: 1, Username: "admin", Name: "Admin User", Role: "admin"},
		sess: session.Session{ID: "sess-1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)},
	}
	r := newAuthRouter(svc)

	payload := bytes.NewBufferString(`{"username":"admin","password":"admin123"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user"`)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestHandler_LoginInvalidCredentials(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{err: autherrors.ErrInvalidCredentials})

	payload := bytes.NewBufferString(`{"username":"ghost","password":"nope"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	assert.Empty(t, w.Result().Cookies())
}

func TestHandler_LoginValidation(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	payload := bytes.NewBufferString(`{"username":"admin"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_LogoutClearsCookie(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
