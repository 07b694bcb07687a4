package approve_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FFP-BookingService/internal/service/bookings"
)

type fakeService struct {
	err error
}

func (f *fakeService) Approve(_ context.Context, _ int64) error {
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, noopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/approve", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/approve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"booking not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"schedule not found", bookings.ErrScheduleNotFound, http.StatusNotFound},
		{"slot taken", bookings.ErrSlotTaken, http.StatusConflict},
		{"not pending", bookings.ErrNotPending, http.StatusConflict},
		{"internal error", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeService{err: tt.serviceErr}, "1")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
