package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at a local httptest server.
func newTestClient(t *testing.T, fn http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(fn)
	t.Cleanup(ts.Close)
	return New(ts.URL), ts
}

func writeEnvelope(w http.ResponseWriter, httpStatus, apiStatus int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  apiStatus,
		"message": message,
		"data":    data,
	})
}

func TestLoginSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		writeEnvelope(w, http.StatusOK, 0, "Login Sukses", map[string]string{"token": "tok-123"})
	})

	token, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLoginRejected(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, 103, "Username atau password salah", nil)
	})

	_, err := c.Login(context.Background(), "user@example.com", "wrong")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Username atau password salah", authErr.Message)
}

func TestEnvelopeStatusFailureOnHTTP200(t *testing.T) {
	// The backend signals failure through the envelope status even on
	// HTTP 200; both must be checked.
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 102, "Parameter tidak sesuai format", nil)
	})

	_, err := c.GetServices(context.Background(), "tok")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 102, reqErr.APIStatus)
	assert.Equal(t, "Parameter tidak sesuai format", reqErr.Message)
}

func TestAuthErrorOnUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, 108, "Token tidak valid atau kadaluwarsa", nil)
	})

	_, err := c.GetProfile(context.Background(), "stale-token")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestEmptyTokenSkipsNetwork(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeEnvelope(w, http.StatusOK, 0, "", nil)
	})

	ctx := context.Background()
	_, err := c.GetServices(ctx, "")
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = c.GetBalance(ctx, "")
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = c.GetTransactionHistory(ctx, "", 0, 5)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = c.UploadProfileImage(ctx, "", "a.png", []byte("x"))
	assert.ErrorIs(t, err, ErrNoToken)

	assert.Zero(t, atomic.LoadInt32(&hits), "no HTTP request may be issued without a token")
}

func TestNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	c := New(ts.URL)
	_, err := c.GetBalance(context.Background(), "tok")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestGetBalance(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, 0, "", map[string]int64{"balance": 150_000})
	})

	bal, err := c.GetBalance(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), bal)
}

func TestUploadProfileImageBoundary(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/profile/image", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(MaxImageBytes*2))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "avatar.png", hdr.Filename)
		assert.Equal(t, int64(MaxImageBytes), hdr.Size)

		writeEnvelope(w, http.StatusOK, 0, "", map[string]string{"profile_image": "https://cdn/img.png"})
	})

	// Exactly 100*1024 bytes is accepted.
	url, err := c.UploadProfileImage(context.Background(), "tok", "avatar.png", bytes.Repeat([]byte{0xAB}, MaxImageBytes))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/img.png", url)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// One byte more is rejected before any network call.
	_, err = c.UploadProfileImage(context.Background(), "tok", "avatar.png", bytes.Repeat([]byte{0xAB}, MaxImageBytes+1))
	var sizeErr *FileSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, int64(MaxImageBytes+1), sizeErr.Size)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "oversized upload must not reach the network")
}

func TestCreateTransaction(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PULSA", body["service_code"])

		writeEnvelope(w, http.StatusOK, 0, "Transaksi berhasil", map[string]any{
			"invoice_number":   "INV17082023-001",
			"service_code":     "PULSA",
			"service_name":     "Pulsa",
			"transaction_type": "PAYMENT",
			"total_amount":     40000,
			"created_on":       "2023-08-17T10:10:10.000Z",
		})
	})

	tx, err := c.CreateTransaction(context.Background(), "tok", "PULSA")
	require.NoError(t, err)
	assert.Equal(t, "INV17082023-001", tx.InvoiceNumber)
	assert.Equal(t, int64(40000), tx.TotalAmount)
}

func TestTransactionHistoryPaging(t *testing.T) {
	// Stable dataset of 8 invoices; the server slices it by
	// offset/limit like the real backend.
	invoices := make([]map[string]any, 8)
	for i := range invoices {
		invoices[i] = map[string]any{
			"invoice_number":   fmt.Sprintf("INV-%03d", i),
			"transaction_type": "TOPUP",
			"description":      "Top Up balance",
			"total_amount":     10000 * (i + 1),
			"created_on":       "2023-08-17T10:10:10.000Z",
		}
	}

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		offset, limit := 0, len(invoices)
		fmt.Sscan(r.URL.Query().Get("offset"), &offset)
		fmt.Sscan(r.URL.Query().Get("limit"), &limit)
		end := offset + limit
		if end > len(invoices) {
			end = len(invoices)
		}
		page := invoices[offset:end]
		writeEnvelope(w, http.StatusOK, 0, "", map[string]any{
			"offset": offset, "limit": limit, "records": page,
		})
	})

	ctx := context.Background()
	first, err := c.GetTransactionHistory(ctx, "tok", 0, 5)
	require.NoError(t, err)
	require.LessOrEqual(t, len(first.Records), 5)

	second, err := c.GetTransactionHistory(ctx, "tok", 5, 5)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, rec := range first.Records {
		seen[rec.InvoiceNumber] = true
	}
	for _, rec := range second.Records {
		assert.False(t, seen[rec.InvoiceNumber], "invoice %s duplicated across pages", rec.InvoiceNumber)
	}
	assert.Len(t, first.Records, 5)
	assert.Len(t, second.Records, 3)
}

func TestTopUp(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(50000), body["top_up_amount"])
		writeEnvelope(w, http.StatusOK, 0, "", map[string]int64{"top_up_amount": 50000, "balance": 200000})
	})

	res, err := c.TopUp(context.Background(), "tok", 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), res.Balance)
}

func TestRegister(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/registration", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Budi", body["first_name"])
		writeEnvelope(w, http.StatusOK, 0, "Registrasi berhasil silahkan login", nil)
	})

	err := c.Register(context.Background(), RegisterRequest{
		Email: "budi@example.com", FirstName: "Budi", LastName: "Santoso", Password: "secret123",
	})
	require.NoError(t, err)
}
