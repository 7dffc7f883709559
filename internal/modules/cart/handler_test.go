package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jastipid/storefront/internal/storage"
)

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	NewHandler(NewService(NewStoreRepository(storage.NewMemoryStore()))).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCartEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Sabun","unit_price":15000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Sabun","unit_price":15000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sum Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	require.Len(t, sum.Lines, 1)
	assert.Equal(t, int64(30000), sum.Total)
	assert.True(t, sum.DrawerOpen)

	rec = do(t, router, http.MethodPatch, "/api/v1/cart/items/Sabun", `{"delta":-2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Empty(t, sum.Lines)
	assert.False(t, sum.DrawerOpen)
}

func TestCartEndpointErrors(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodPost, "/api/v1/cart/items", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/v1/cart/items/Ghost", `{"delta":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/v1/cart", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
