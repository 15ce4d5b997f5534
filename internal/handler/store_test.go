package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eso-store-web/internal/model"
	"eso-store-web/internal/session"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, map[string]interface{}) {
	t.Helper()

	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Success, body.Data
}

func TestPurchaseUpdatesSessionBalance(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/purchase", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"message":"Purchased!","balance":650}`))
	}))
	h := NewStoreHandler(env.backend, env.sessions)

	sess, cookie := env.signIn(t, model.SessionUser{ID: "u1", VbucksBalance: 1000})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/store/purchase",
		strings.NewReader(`{"cosmeticId":"c1"}`)), sess, cookie)
	rec := httptest.NewRecorder()
	h.Purchase(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	success, data := decodeEnvelope(t, rec)
	assert.True(t, success)
	assert.EqualValues(t, 650, data["balance"])

	// The stored session mirrors the backend-reported balance.
	got, err := env.sessions.Current(req)
	require.NoError(t, err)
	assert.Equal(t, 650, got.User.VbucksBalance)
}

func TestPurchaseRequiresExactlyOneID(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the backend must not be called for invalid requests")
	}))
	h := NewStoreHandler(env.backend, env.sessions)
	sess, cookie := env.signIn(t, model.SessionUser{ID: "u1"})

	bodies := []string{
		`{}`,
		`{"cosmeticId":"c1","bundleId":"b1"}`,
	}
	for _, body := range bodies {
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/store/purchase",
			strings.NewReader(body)), sess, cookie)
		rec := httptest.NewRecorder()
		h.Purchase(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestPurchaseMirrorsBackendFailure(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Insufficient V-Bucks"}`))
	}))
	h := NewStoreHandler(env.backend, env.sessions)
	sess, cookie := env.signIn(t, model.SessionUser{ID: "u1", VbucksBalance: 100})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/store/purchase",
		strings.NewReader(`{"cosmeticId":"c1"}`)), sess, cookie)
	rec := httptest.NewRecorder()
	h.Purchase(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient V-Bucks")

	// The balance stays untouched on failure.
	got, err := env.sessions.Current(req)
	require.NoError(t, err)
	assert.Equal(t, 100, got.User.VbucksBalance)
}

func TestPurchaseExpiredTokenDestroysSession(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	h := NewStoreHandler(env.backend, env.sessions)
	sess, cookie := env.signIn(t, model.SessionUser{ID: "u1"})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/store/purchase",
		strings.NewReader(`{"cosmeticId":"c1"}`)), sess, cookie)
	rec := httptest.NewRecorder()
	h.Purchase(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, err := env.sessions.Current(req)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRefundUpdatesSessionBalance(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/refund", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"Refunded","balance":1400}`))
	}))
	h := NewStoreHandler(env.backend, env.sessions)
	sess, cookie := env.signIn(t, model.SessionUser{ID: "u1", VbucksBalance: 600})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/store/refund",
		strings.NewReader(`{"cosmeticId":"c1"}`)), sess, cookie)
	rec := httptest.NewRecorder()
	h.Refund(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	got, err := env.sessions.Current(req)
	require.NoError(t, err)
	assert.Equal(t, 1400, got.User.VbucksBalance)
}

func TestRefundRequiresCosmeticID(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the backend must not be called for invalid requests")
	}))
	h := NewStoreHandler(env.backend, env.sessions)
	sess, cookie := env.signIn(t, model.SessionUser{ID: "u1"})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/store/refund",
		strings.NewReader(`{}`)), sess, cookie)
	rec := httptest.NewRecorder()
	h.Refund(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
