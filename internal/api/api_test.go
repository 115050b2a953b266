package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/kisan/internal/pkg/store"
)

func newTestAPI(t *testing.T) *APIService {
	t.Helper()
	svc, err := NewAPIService(store.NewMemoryStore())
	require.NoError(t, err)
	return svc
}

func doJSON(t *testing.T, svc *APIService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodPost, "/api/auth/register",
		`{"username":"ravi","password":"secret123","location":"Guntur"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	user := decode(t, rec)
	require.NotEmpty(t, user["_id"])
	require.Equal(t, "ravi", user["username"])
	require.Equal(t, "english", user["language"])
	require.NotContains(t, user, "password")
	require.NotContains(t, user, "passwordHash")

	// Same username again must not create a second account.
	rec = doJSON(t, svc, http.MethodPost, "/api/auth/register",
		`{"username":"ravi","password":"other456"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Username already exists", decode(t, rec)["message"])

	rec = doJSON(t, svc, http.MethodPost, "/api/auth/login",
		`{"username":"ravi","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user["_id"], decode(t, rec)["_id"])

	rec = doJSON(t, svc, http.MethodPost, "/api/auth/login",
		`{"username":"ravi","password":"other456"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", decode(t, rec)["message"])
}

func TestListingLifecycle(t *testing.T) {
	svc := newTestAPI(t)

	// userId is the gate checked first.
	rec := doJSON(t, svc, http.MethodPost, "/api/listings",
		`{"quantity":10,"pricePerUnit":2000,"location":"Guntur"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, svc, http.MethodPost, "/api/listings",
		`{"userId":"u1","quantity":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Quantity, price, and location are required", decode(t, rec)["message"])

	rec = doJSON(t, svc, http.MethodPost, "/api/listings",
		`{"userId":"u1","cropId":"1","quantity":10,"pricePerUnit":2000,"location":"Guntur"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	listing := decode(t, rec)
	require.Equal(t, true, listing["isActive"])
	listingID := listing["_id"].(string)

	rec = doJSON(t, svc, http.MethodGet, "/api/listings/user/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listings []map[string]interface{}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	require.Equal(t, listingID, listings[0]["_id"])

	rec = doJSON(t, svc, http.MethodPatch, "/api/listings/"+listingID,
		`{"isActive":false,"pricePerUnit":1800}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	require.Equal(t, false, updated["isActive"])
	require.Equal(t, 1800.0, updated["pricePerUnit"])

	// Deactivated listings drop out of the public feed.
	rec = doJSON(t, svc, http.MethodGet, "/api/listings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listings = nil
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &listings))
	require.Empty(t, listings)

	rec = doJSON(t, svc, http.MethodPatch, "/api/listings/absent",
		`{"isActive":false}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Listing not found", decode(t, rec)["message"])
}

func TestCropsSeededAndNotFound(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodGet, "/api/crops", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var crops []map[string]interface{}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &crops))
	require.Len(t, crops, 4)

	rec = doJSON(t, svc, http.MethodGet, "/api/crops/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Crop not found", decode(t, rec)["message"])

	rec = doJSON(t, svc, http.MethodPost, "/api/crops",
		`{"name":"Chili","category":"spices"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	require.Equal(t, "quintal", created["unit"])
}

func TestWeatherAlertSampleFallback(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodGet, "/api/weather-alerts/Guntur", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var alerts []map[string]interface{}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &alerts))
	require.Len(t, alerts, 1)
	require.Equal(t, "Guntur", alerts[0]["location"])
	require.Equal(t, "medium", alerts[0]["severity"])
}

func TestForecastShape(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodGet, "/api/weather/forecast/Warangal", "")
	require.Equal(t, http.StatusOK, rec.Code)
	forecast := decode(t, rec)
	require.Equal(t, "Warangal", forecast["location"])
	require.Len(t, forecast["daily"], 7)
}

func TestDatabaseStatusMemory(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodGet, "/api/database/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode(t, rec)
	require.Equal(t, false, status["connected"])
	require.Equal(t, "Using in-memory storage", status["message"])

	collections := status["collections"].(map[string]interface{})
	require.Equal(t, 4.0, collections["crops"])
	require.Equal(t, 4.0, collections["marketPrices"])
}

func TestBackfillRequiresAdminToken(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodPost, "/api/market-prices/backfill",
		`{"url":"http://mandi.example/prices"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodGet, "/api/users/absent", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decode(t, rec)["message"])
}

func TestCreateMarketPriceAcceptsZero(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodPost, "/api/market-prices",
		`{"price":0,"market":"Guntur Mandi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode(t, rec)
	require.Equal(t, 0.0, created["price"])
	require.Equal(t, "Guntur Mandi", created["market"])

	rec = doJSON(t, svc, http.MethodPost, "/api/market-prices",
		`{"price":-10,"market":"Guntur Mandi"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeStopsOnShutdown(t *testing.T) {
	svc := newTestAPI(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Serve("127.0.0.1:0")
	}()

	// wait for the listener before shutting it down
	require.Eventually(t, func() bool {
		return svc.Router().ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, svc.Shutdown(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestMarketPricesSeeded(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodGet, "/api/market-prices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var prices []map[string]interface{}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &prices))
	require.Len(t, prices, 4)

	rec = doJSON(t, svc, http.MethodGet, "/api/market-prices/crop/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	prices = nil
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &prices))
	require.Len(t, prices, 1)
	require.Equal(t, "1", prices[0]["cropId"])
}
