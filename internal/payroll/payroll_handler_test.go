package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/deployappsa/absensi/internal/middleware"
	"github.com/deployappsa/absensi/internal/payroll"
)

type fakePayrollService struct {
	createCalls int
	created     payroll.PayrollResponse
}

func (f *fakePayrollService) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	f.createCalls++
	return f.created, nil
}

func (f *fakePayrollService) ListByUser(ctx context.Context, userID uint) ([]payroll.PayrollResponse, error) {
	return nil, nil
}

func (f *fakePayrollService) Pay(ctx context.Context, payrollID uint) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}

type allowAllAuthz struct{}

func (allowAllAuthz) Allowed(role, resource, action string) (bool, error) { return true, nil }

func newPayrollRouter(svc payroll.Service, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	requireAuth := func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("role", "admin")
		c.Next()
	}

	h := payroll.NewHandlerWithRedis(svc, rdb)
	api := r.Group("/api")
	payroll.RegisterRoutes(api, h, requireAuth, allowAllAuthz{}, middleware.Idempotency(rdb))
	return r
}

func postPayroll(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	body := `{"userId":2,"period":"2026-08","basicSalary":10000000}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payrolls", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateFillsIdempotencyCacheAndReleasesLock(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := &fakePayrollService{created: payroll.PayrollResponse{ID: 5, UserID: 2, Period: "2026-08", NetSalary: 10000000, Status: payroll.StatusPending}}
	router := newPayrollRouter(svc, rdb)

	cacheKey := "idemp:/api/payrolls:1:abc-123"
	lockKey := cacheKey + ":lock"
	cached, _ := json.Marshal(gin.H{"payroll": svc.created})

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, cached, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := postPayroll(router, "abc-123")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.createCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_CreateReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := &fakePayrollService{created: payroll.PayrollResponse{ID: 5}}
	router := newPayrollRouter(svc, rdb)

	cacheKey := "idemp:/api/payrolls:1:abc-123"
	cached, _ := json.Marshal(gin.H{"payroll": payroll.PayrollResponse{ID: 5, UserID: 2, Period: "2026-08"}})
	mock.ExpectGet(cacheKey).SetVal(string(cached))

	w := postPayroll(router, "abc-123")

	// request kedua tidak menyentuh service sama sekali
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.createCalls)
	assert.Contains(t, w.Body.String(), `"period":"2026-08"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_CreateWithoutKeySkipsRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := &fakePayrollService{created: payroll.PayrollResponse{ID: 6}}
	router := newPayrollRouter(svc, rdb)

	w := postPayroll(router, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.createCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
