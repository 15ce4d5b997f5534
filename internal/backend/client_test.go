package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := client.do(context.Background(), "tok-123", http.MethodGet, "/cosmetics", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDoSkipsAuthHeaderWithoutToken(t *testing.T) {
	var hadAuth bool
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := client.do(context.Background(), "", http.MethodGet, "/public/users", nil, nil)
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestDoUnauthorized(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	_, err := client.do(context.Background(), "stale", http.MethodGet, "/me/inventory", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestErrorMessageShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"flat message", `{"message":"not enough v-bucks"}`, "not enough v-bucks"},
		{"nested message", `{"error":{"message":"cosmetic not found"}}`, "cosmetic not found"},
		{"unknown shape", `{"detail":"nope"}`, "request failed with status 400"},
		{"not json", `boom`, "request failed with status 400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body), http.StatusBadRequest))
		})
	}
}

func TestListCosmeticsOmitsEmptyFilters(t *testing.T) {
	var gotQuery map[string][]string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":20,"totalPages":1}`))
	}))
	defer srv.Close()

	_, err := client.ListCosmetics(context.Background(), "", ListCosmeticsQuery{
		Search:  "glider",
		OnlyNew: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"glider"}, gotQuery["search"])
	assert.Equal(t, []string{"true"}, gotQuery["onlyNew"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"20"}, gotQuery["limit"])

	for _, key := range []string{"type", "rarity", "startDate", "endDate", "onlyOnSale", "onlyPromo"} {
		assert.NotContains(t, gotQuery, key, "empty filter %q must not be sent", key)
	}
}

func TestListCosmeticsEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"c1","name":"Raven"}],"total":41,"page":2,"limit":20,"totalPages":3}`))
	}))
	defer srv.Close()

	page, err := client.ListCosmetics(context.Background(), "", ListCosmeticsQuery{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 41, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Raven", page.Data[0].Name)
}

func TestListCosmeticsBareArray(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"c1","name":"Raven"},{"id":"c2","name":"Drift"}]`))
	}))
	defer srv.Close()

	page, err := client.ListCosmetics(context.Background(), "", ListCosmeticsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Data, 2)
}

func TestListCosmeticsEmptyBareArray(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	page, err := client.ListCosmetics(context.Background(), "", ListCosmeticsQuery{})
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestPurchaseCosmetic(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/store/purchase", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c1", body["cosmeticId"])
		assert.NotContains(t, body, "bundleId")

		w.Write([]byte(`{"success":true,"message":"Purchased!","balance":750}`))
	}))
	defer srv.Close()

	result, err := client.PurchaseCosmetic(context.Background(), "tok", "c1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 750, result.Balance)
	assert.Equal(t, "Purchased!", result.Message)
}

func TestPurchaseBundleSendsBundleID(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "b1", body["bundleId"])
		assert.NotContains(t, body, "cosmeticId")

		w.Write([]byte(`{"success":true,"balance":100}`))
	}))
	defer srv.Close()

	result, err := client.PurchaseBundle(context.Background(), "tok", "b1")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Balance)
}

func TestRefundCosmetic(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/refund", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"Refunded","balance":1200}`))
	}))
	defer srv.Close()

	result, err := client.RefundCosmetic(context.Background(), "tok", "c1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1200, result.Balance)
}

func TestLogin(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		w.Write([]byte(`{"accessToken":"jwt-abc","user":{"id":"u1","name":"Ana","vbucksBalance":1000}}`))
	}))
	defer srv.Close()

	result, err := client.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", result.AccessToken)
	assert.Equal(t, "Ana", result.User.Name)
	assert.Equal(t, 1000, result.User.VbucksBalance)
}

func TestLoginRejectsMissingToken(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"u1"}}`))
	}))
	defer srv.Close()

	_, err := client.Login(context.Background(), "ana@example.com", "secret")
	assert.Error(t, err)
}

func TestRegisterDoesNotRequireToken(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		w.Write([]byte(`{"id":"u2","name":"Bo","email":"bo@example.com"}`))
	}))
	defer srv.Close()

	user, err := client.Register(context.Background(), "Bo", "bo@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
}

func TestGetInventoryNormalizesEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/inventory", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"inv1","source":"BUNDLE","cosmetic":{"id":"c1","name":"Raven"}}]}`))
	}))
	defer srv.Close()

	items, err := client.GetInventory(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "BUNDLE", items[0].Source)
	assert.Equal(t, "Raven", items[0].Cosmetic.Name)
}

func TestListBundlesBareArray(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"b1","name":"Starter Pack","price":500}]`))
	}))
	defer srv.Close()

	bundles, err := client.ListBundles(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "Starter Pack", bundles[0].Name)
}

func TestCreateBundle(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Duo", body["name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"b9","name":"Duo","price":800}`))
	}))
	defer srv.Close()

	bundle, err := client.CreateBundle(context.Background(), "tok", CreateBundleInput{
		Name:        "Duo",
		Price:       800,
		CosmeticIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "b9", bundle.ID)
}
