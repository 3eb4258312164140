package attendance

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	attendanceerrors "github.com/deployappsa/absensi/internal/attendance/errors"
)

type fakeService struct {
	resp        AttendanceResponse
	pending     []PendingResponse
	report      []byte
	err         error
	gotApproved *bool
}

func (f *fakeService) CheckIn(ctx context.Context, userID uint, req CheckInRequest) (AttendanceResponse, error) {
	return f.resp, f.err
}

func (f *fakeService) CheckOut(ctx context.Context, userID, attendanceID uint, req CheckOutRequest) (AttendanceResponse, error) {
	return f.resp, f.err
}

func (f *fakeService) Approve(ctx context.Context, adminID, attendanceID uint, approved bool) (AttendanceResponse, error) {
	f.gotApproved = &approved
	return f.resp, f.err
}

func (f *fakeService) ListByUser(ctx context.Context, userID uint) ([]AttendanceResponse, error) {
	return []AttendanceResponse{f.resp}, f.err
}

func (f *fakeService) ListPending(ctx context.Context) ([]PendingResponse, error) {
	return f.pending, f.err
}

func (f *fakeService) Export(ctx context.Context) ([]byte, error) {
	return f.report, f.err
}

func newRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint(1)) })

	h := NewHandler(svc)
	api := r.Group("/api/attendance")
	{
		api.GET("", h.List)
		api.POST("/check-in", h.CheckIn)
		api.POST("/:id/check-out", h.CheckOut)
		api.PATCH("/:id/approve", h.Approve)
		api.GET("/pending", h.ListPending)
		api.GET("/export", h.Export)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CheckInCreated(t *testing.T) {
	r := newRouter(&fakeService{resp: AttendanceResponse{ID: 1, Status: StatusPresent}})

	w := doJSON(r, http.MethodPost, "/api/attendance/check-in",
		`{"shiftId":1,"timestamp":"2026-08-03T08:00:00Z","photo":"p","location":"-6.2,106.8"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"attendance"`)
}

func TestHandler_CheckInValidation(t *testing.T) {
	r := newRouter(&fakeService{})

	w := doJSON(r, http.MethodPost, "/api/attendance/check-in", `{"shiftId":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_ApproveFalseStillBinds(t *testing.T) {
	svc := &fakeService{resp: AttendanceResponse{ID: 1}}
	r := newRouter(svc)

	w := doJSON(r, http.MethodPatch, "/api/attendance/1/approve", `{"approved":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, svc.gotApproved)
	assert.False(t, *svc.gotApproved)
}

func TestHandler_ApproveMissingFlag(t *testing.T) {
	r := newRouter(&fakeService{})

	w := doJSON(r, http.MethodPatch, "/api/attendance/1/approve", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckOutBadID(t *testing.T) {
	r := newRouter(&fakeService{})

	w := doJSON(r, http.MethodPost, "/api/attendance/abc/check-out",
		`{"timestamp":"2026-08-03T17:00:00Z","photo":"p","location":"l"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckOutForbidden(t *testing.T) {
	r := newRouter(&fakeService{err: attendanceerrors.ErrNotOwner})

	w := doJSON(r, http.MethodPost, "/api/attendance/1/check-out",
		`{"timestamp":"2026-08-03T17:00:00Z","photo":"p","location":"l"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestHandler_ExportHeaders(t *testing.T) {
	r := newRouter(&fakeService{report: []byte("PKfake")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
}
