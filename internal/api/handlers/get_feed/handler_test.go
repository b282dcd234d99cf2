package get_feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/internal/api/middleware"
	"github.com/m04kA/SLN-CalendarService/internal/feed"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

type fakeProvider struct {
	snapshot *feed.Snapshot
}

func (f *fakeProvider) Current() *feed.Snapshot {
	return f.snapshot
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, provider *fakeProvider, role string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/feed", nil)
	req.Header.Set("X-User-ID", "7")
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/calendar/feed",
		NewHandler(provider, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ServesCurrentSnapshot(t *testing.T) {
	provider := &fakeProvider{snapshot: &feed.Snapshot{
		Seq:       3,
		FetchedAt: time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC),
		List: &models.AppointmentListResponse{
			Appointments: []models.AppointmentResponse{{ID: 1, FranchiseID: 42}},
			Pagination:   models.Pagination{Page: 1, Limit: 200, Total: 1, Pages: 1},
		},
	}}

	rec := doRequest(t, provider, "super_admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint64(3), resp.Seq)
	require.Equal(t, "2026-09-02T12:00:00Z", resp.FetchedAt)
	require.Len(t, resp.Appointments, 1)
	require.Equal(t, int64(1), resp.Pagination.Total)
}

func TestHandle_RestrictedRoleForbidden(t *testing.T) {
	provider := &fakeProvider{snapshot: &feed.Snapshot{
		List: &models.AppointmentListResponse{},
	}}

	rec := doRequest(t, provider, "staff")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_UnavailableBeforeFirstSnapshot(t *testing.T) {
	rec := doRequest(t, &fakeProvider{}, "company_admin")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
