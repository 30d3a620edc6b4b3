package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/model"
)

func TestNewClient_ValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr error
	}{
		{name: "empty", baseURL: "", wantErr: common.ErrMissingConfig},
		{name: "whitespace", baseURL: "   ", wantErr: common.ErrMissingConfig},
		{name: "no scheme", baseURL: "api.redemly.test", wantErr: common.ErrInvalidConfig},
		{name: "valid http", baseURL: "http://localhost:5050"},
		{name: "valid https with trailing slash", baseURL: "https://api.redemly.test/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestListVendors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/vendors", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"vendors": []map[string]any{
					{"id": "v1", "name": "Acme Foods", "status": "approved"},
					{"id": "v2", "name": "Best Buy", "status": "pending"},
				},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	vendors, err := client.ListVendors(context.Background())

	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Acme Foods", vendors[0].Name)
	assert.Equal(t, model.VendorApproved, vendors[0].Status)
	assert.Equal(t, model.VendorPending, vendors[1].Status)
}

func TestList_ToleratesMissingRecordFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"coupons": []map[string]any{
					{"id": "c1"}, // everything else missing
				},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	coupons, err := client.ListCoupons(context.Background())

	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "c1", coupons[0].ID)
	assert.Empty(t, coupons[0].Title)
	assert.True(t, coupons[0].ExpiresAt.IsZero())
}

func TestList_EnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "database unavailable",
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.ListUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestRequest_StatusMapping(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		status  int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: common.ErrAPIUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: common.ErrAPIUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: common.ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: common.ErrAPIRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, err := NewClient(server.URL)
			require.NoError(t, err)

			_, err = client.ListPayments(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateVendorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/vendors/v1", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "approved", payload["status"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"vendor": map[string]any{"id": "v1", "name": "Acme Foods", "status": "approved"},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	vendor, err := client.UpdateVendorStatus(context.Background(), "v1", model.VendorApproved)

	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.Equal(t, model.VendorApproved, vendor.Status)
}

func TestDeleteCoupon_BareSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/coupons/c9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "deleted"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	assert.NoError(t, client.DeleteCoupon(context.Background(), "c9"))
}

func TestSettlePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/payments/p3", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"payment": map[string]any{"id": "p3", "status": "settled", "amount": 120.5},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	payment, err := client.SettlePayment(context.Background(), "p3")

	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, model.PaymentSettled, payment.Status)
	assert.InDelta(t, 120.5, payment.Amount, 0.001)
}
