package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servizo/api"
	"servizo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, handler http.HandlerFunc) *DefaultBookingService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &DefaultBookingService{API: api.New(srv.URL, 5*time.Second)}
}

func TestRefreshFetchesBothRoles(t *testing.T) {
	var roles []string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		role := r.URL.Query().Get("role")
		roles = append(roles, role)
		var out []models.Booking
		if role == models.RoleCustomer {
			out = []models.Booking{{ID: "b1", Status: models.BookingPending}}
		} else {
			out = []models.Booking{{ID: "b2", Status: models.BookingAccepted}}
		}
		json.NewEncoder(w).Encode(out)
	})

	cols, err := svc.Refresh(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleCustomer, models.RoleProvider}, roles)
	require.Len(t, cols.Customer, 1)
	require.Len(t, cols.Provider, 1)
	assert.Equal(t, "b1", cols.Customer[0].ID)
	assert.Equal(t, "b2", cols.Provider[0].ID)
}

func TestRespondRejectsUnknownStatus(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an invalid status")
	})

	_, err := svc.Respond(context.Background(), "tok", "b1", "maybe")
	assert.Error(t, err)
}

func TestRespondPatchesStatus(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookings/b1/status", r.URL.Path)
		json.NewEncoder(w).Encode(models.Booking{ID: "b1", Status: models.BookingDeclined})
	})

	booking, err := svc.Respond(context.Background(), "tok", "b1", models.BookingDeclined)
	require.NoError(t, err)
	assert.Equal(t, models.BookingDeclined, booking.Status)
}

func TestSubmitPostsDraft(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		var draft models.BookingDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "s1", draft.ServiceID)
		assert.Nil(t, draft.ScheduledEnd)
		json.NewEncoder(w).Encode(models.Booking{ID: "b9", ServiceID: "s1", Status: models.BookingPending})
	})

	booking, err := svc.Submit(context.Background(), "tok", models.BookingDraft{ServiceID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "b9", booking.ID)
}
