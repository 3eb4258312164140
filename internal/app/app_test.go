package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deployappsa/absensi/internal/bootstrap"
)

func TestBuildApp_MemoryDriver(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := LoadConfig()
	cfg.StorageDriver = DriverMemory
	cfg.RedisAddr = ""

	assert.NoError(t, BuildApp(router, cfg, bootstrap.NewStdoutAuditLogger()))

	// admin hasil seed bisa langsung login
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestBuildApp_RejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := LoadConfig()
	cfg.StorageDriver = DriverMemory
	cfg.RedisAddr = ""

	assert.NoError(t, BuildApp(router, cfg, bootstrap.NewStdoutAuditLogger()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attendance", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
