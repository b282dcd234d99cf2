package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

func runAuth(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, domain.Viewer, bool) {
	t.Helper()

	var viewer domain.Viewer
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, ok = GetViewer(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	Auth(next).ServeHTTP(rec, req)
	return rec, viewer, ok
}

func TestAuth_FullIdentity(t *testing.T) {
	rec, viewer, ok := runAuth(t, map[string]string{
		"X-User-ID":      "7",
		"X-User-Role":    "franchise_manager",
		"X-Franchise-ID": "42",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	require.Equal(t, int64(7), viewer.UserID)
	require.Equal(t, domain.RoleFranchiseManager, viewer.Role)
	require.NotNil(t, viewer.FranchiseID)
	require.Equal(t, int64(42), *viewer.FranchiseID)
}

func TestAuth_MissingUserIDRejected(t *testing.T) {
	rec, _, ok := runAuth(t, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, ok)
}

func TestAuth_InvalidUserIDRejected(t *testing.T) {
	rec, _, _ := runAuth(t, map[string]string{"X-User-ID": "abc"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MissingRoleDefaultsToStaff(t *testing.T) {
	rec, viewer, ok := runAuth(t, map[string]string{"X-User-ID": "7"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	require.Equal(t, domain.RoleStaff, viewer.Role)
	require.Nil(t, viewer.FranchiseID)
}

func TestAuth_UnknownRoleRejected(t *testing.T) {
	rec, _, _ := runAuth(t, map[string]string{
		"X-User-ID":   "7",
		"X-User-Role": "owner",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidFranchiseIDRejected(t *testing.T) {
	rec, _, _ := runAuth(t, map[string]string{
		"X-User-ID":      "7",
		"X-Franchise-ID": "abc",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
