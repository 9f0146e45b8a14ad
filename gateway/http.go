package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"drivio/models"
)

// RESTGateway talks to the rental service's booking API over HTTP.
type RESTGateway struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewRESTGateway(baseURL, apiKey string) *RESTGateway {
	return &RESTGateway{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// remoteEnvelope is the rental service's error/signal body. Signals ride
// on the code field; everything else is a plain error message.
type remoteEnvelope struct {
	Code         string                 `json:"code"`
	Message      string                 `json:"message"`
	PaymentRef   string                 `json:"payment_ref,omitempty"`
	Amount       int64                  `json:"amount,omitempty"`
	Alternatives []models.VehicleOption `json:"alternatives,omitempty"`
}

func (g *RESTGateway) doJSON(ctx context.Context, method, path string, reqBody any, respBody any) (int, error) {
	if g.HTTPClient == nil {
		g.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if g.BaseURL == "" {
		return 0, fmt.Errorf("missing rental service base URL")
	}

	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.APIKey != "" {
		req.Header.Set("X-API-Key", g.APIKey)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, decodeFailure(resp.StatusCode, b)
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			return resp.StatusCode, fmt.Errorf("decode rental service response failed: %w body=%s", err, string(b))
		}
	}

	return resp.StatusCode, nil
}

// decodeFailure maps structured remote responses to signal errors and
// everything else to a RemoteError carrying the server's message.
func decodeFailure(status int, body []byte) error {
	var env remoteEnvelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			return &RemoteError{StatusCode: status, Message: string(body)}
		}
	}
	switch env.Code {
	case "payment_required":
		return &PaymentRequiredError{PaymentRef: env.PaymentRef, Amount: env.Amount}
	case "verification_required":
		return &VerificationRequiredError{Reason: env.Message}
	case "vehicle_unavailable":
		return &AlternativeVehiclesError{Alternatives: env.Alternatives}
	}
	return &RemoteError{StatusCode: status, Message: env.Message}
}

func (g *RESTGateway) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if _, err := g.doJSON(ctx, http.MethodPost, "/v1/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

func (g *RESTGateway) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if _, err := g.doJSON(ctx, http.MethodGet, "/v1/bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

func (g *RESTGateway) UpdateBooking(ctx context.Context, id string, patch UpdateBookingPatch) (*models.Booking, error) {
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if _, err := g.doJSON(ctx, http.MethodPatch, "/v1/bookings/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

func (g *RESTGateway) CancelBooking(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	_, err := g.doJSON(ctx, http.MethodPost, "/v1/bookings/"+url.PathEscape(id)+"/cancel", body, nil)
	return err
}

func (g *RESTGateway) ListBookings(ctx context.Context, renterID string, page, pageSize int) ([]models.Booking, int, error) {
	q := url.Values{}
	q.Set("renter_id", renterID)
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	var out struct {
		Bookings   []models.Booking `json:"bookings"`
		TotalCount int              `json:"total_count"`
	}
	if _, err := g.doJSON(ctx, http.MethodGet, "/v1/bookings?"+q.Encode(), nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Bookings, out.TotalCount, nil
}
