package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drivio/gateway"
	"drivio/models"
	"drivio/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService lets each test plug in just the method it exercises.
type stubService struct {
	booking.BookingService

	create func(ctx context.Context, renterID string, draft models.BookingDraft) (*models.Booking, *models.PendingPayment, error)
	get    func(ctx context.Context, renterID, id string) (*models.Booking, error)
	edit   func(ctx context.Context, renterID, id string, req models.EditRequest) (*models.Booking, []models.VehicleOption, error)
}

func (s *stubService) CreateBooking(ctx context.Context, renterID string, draft models.BookingDraft) (*models.Booking, *models.PendingPayment, error) {
	return s.create(ctx, renterID, draft)
}

func (s *stubService) GetBooking(ctx context.Context, renterID, id string) (*models.Booking, error) {
	return s.get(ctx, renterID, id)
}

func (s *stubService) EditBooking(ctx context.Context, renterID, id string, req models.EditRequest) (*models.Booking, []models.VehicleOption, error) {
	return s.edit(ctx, renterID, id, req)
}

func testContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("renterID", "r-1")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", booking.NewValidationError("bad dates"), http.StatusBadRequest, "validationError"},
		{"eligibility", booking.NewEligibilityError("too late"), http.StatusForbidden, "eligibilityError"},
		{"conflict", booking.NewConflictError("busy"), http.StatusConflict, "conflictError"},
		{"ownership hides the booking", booking.NewPermissionError("not yours"), http.StatusNotFound, "permissionError"},
		{"verification redirect", &gateway.VerificationRequiredError{Reason: "licence"}, http.StatusForbidden, "verification_required"},
		{"remote 404 passthrough", &gateway.RemoteError{StatusCode: 404, Message: "no such booking"}, http.StatusNotFound, "remoteError"},
		{"remote failure", &gateway.RemoteError{StatusCode: 500, Message: "boom"}, http.StatusBadGateway, "remoteError"},
		{"transport failure", context.DeadlineExceeded, http.StatusBadGateway, "connectivityError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(t, http.MethodGet, "/api/bookings/bk-1", nil)
			respondError(c, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tc.wantCode, body["code"])
		})
	}
}

func TestRespondError_RemoteMessageVerbatim(t *testing.T) {
	c, w := testContext(t, http.MethodPost, "/api/bookings", nil)
	respondError(c, &gateway.RemoteError{StatusCode: 422, Message: "station closed on the requested pickup date"})
	body := decodeBody(t, w)
	assert.Equal(t, "station closed on the requested pickup date", body["error"])
}

func TestCreate_PendingPaymentReturns202(t *testing.T) {
	h := NewBookingHandler(&stubService{
		create: func(_ context.Context, renterID string, _ models.BookingDraft) (*models.Booking, *models.PendingPayment, error) {
			assert.Equal(t, "r-1", renterID)
			return nil, &models.PendingPayment{SessionID: "sess-1", Amount: 50000}, nil
		},
	})

	c, w := testContext(t, http.MethodPost, "/api/bookings", gin.H{
		"draft": models.BookingDraft{VehicleID: "veh-1", StationID: "st-1", Channel: models.ChannelOnline},
	})
	h.Create(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	body := decodeBody(t, w)
	pending, ok := body["pending_payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sess-1", pending["session_id"])
}

func TestCreate_BookingReturns201(t *testing.T) {
	h := NewBookingHandler(&stubService{
		create: func(_ context.Context, _ string, _ models.BookingDraft) (*models.Booking, *models.PendingPayment, error) {
			return &models.Booking{ID: "bk-1"}, nil, nil
		},
	})

	c, w := testContext(t, http.MethodPost, "/api/bookings", gin.H{
		"draft": models.BookingDraft{VehicleID: "veh-1", StationID: "st-1", Channel: models.ChannelOnline},
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGet_AttachesEligibilityFlags(t *testing.T) {
	orig := timeNow
	timeNow = func() time.Time { return time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = orig }()

	h := NewBookingHandler(&stubService{
		get: func(_ context.Context, _, id string) (*models.Booking, error) {
			return &models.Booking{
				ID:         id,
				RenterID:   "r-1",
				Channel:    models.ChannelOnline,
				Status:     models.BookingStatusPending,
				StartDate:  "2025-11-10",
				EndDate:    "2025-11-13",
				PickupTime: "10:00",
				CanCancel:  true,
				HoldingFee: &models.HoldingFee{Amount: 50000, Status: models.HoldingFeePaid},
			}, nil
		},
	})

	c, w := testContext(t, http.MethodGet, "/api/bookings/bk-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "bk-1"}}
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["can_edit"])
	assert.Equal(t, true, body["can_cancel"])
}

func TestEdit_AlternativesReturn409(t *testing.T) {
	h := NewBookingHandler(&stubService{
		edit: func(_ context.Context, _, _ string, _ models.EditRequest) (*models.Booking, []models.VehicleOption, error) {
			return &models.Booking{ID: "bk-1"}, []models.VehicleOption{{VehicleID: "veh-2"}}, nil
		},
	})

	c, w := testContext(t, http.MethodPatch, "/api/bookings/bk-1", models.EditRequest{
		StartDate: "2025-11-10",
		EndDate:   "2025-11-15",
		Reason:    "new dates",
	})
	c.Params = gin.Params{{Key: "id", Value: "bk-1"}}
	h.Edit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "vehicle_unavailable", body["code"])
	alts, ok := body["alternatives"].([]any)
	require.True(t, ok)
	assert.Len(t, alts, 1)
}
