package create_appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/pkg/ptr"
	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		FranchiseID: 1,
		ServiceID:   10,
		Name:        "Alice",
		Phone:       "5551234567",
		Date:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:30"),
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	require.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing franchise", func(r *Request) { r.FranchiseID = 0 }, ErrInvalidInput},
		{"missing service", func(r *Request) { r.ServiceID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"zero time", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"bad time format", func(r *Request) { r.StartTime = "25:99" }, ErrInvalidInput},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", 501)) }, ErrInvalidInput},
		{"no customer at all", func(r *Request) { r.Name = ""; r.Phone = "" }, ErrMissingCustomer},
		{"phone too short", func(r *Request) { r.Phone = "12345" }, ErrInvalidPhone},
		{"phone with separators", func(r *Request) { r.Phone = "555-123-4567" }, ErrInvalidPhone},
		{"phone too long", func(r *Request) { r.Phone = "55512345678" }, ErrInvalidPhone},
		{"bad customer id", func(r *Request) { r.CustomerID = ptr.Ptr(int64(0)) }, ErrInvalidInput},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			require.ErrorIs(t, validateRequest(req), tt.wantErr)
		})
	}
}

func TestValidateCustomerIdentity_SelectionSkipsManualChecks(t *testing.T) {
	// При выбранном клиенте ручные поля не проверяются
	req := validRequest()
	req.CustomerID = ptr.Ptr(int64(3))
	req.Name = ""
	req.Phone = "bad"

	require.NoError(t, validateCustomerIdentity(req))
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC)

	// сегодня допустимо независимо от времени суток
	require.NoError(t, validateDate(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), now))
	require.NoError(t, validateDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), now))
	require.ErrorIs(t, validateDate(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), now), ErrDateInPast)
}
