package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evervow/services/routing"
)

func edgeTestLookups() routing.Lookups {
	return routing.Lookups{
		WeddingIDByApexDomain: func(_ context.Context, domain string) (string, error) {
			if domain == "sallyandtom.com" {
				return "w-apex", nil
			}
			return "", nil
		},
		WeddingIDBySubdomain: func(_ context.Context, subdomain string) (string, error) {
			if subdomain == "acme" {
				return "w-acme", nil
			}
			return "", nil
		},
	}
}

func TestEdgeHandler_RewritesTenantTraffic(t *testing.T) {
	var served string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	edge := NewEdgeHandler(next, edgeTestLookups())

	req := httptest.NewRequest(http.MethodGet, "/photos", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()

	edge.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/tenant/acme/photos", served)
}

func TestEdgeHandler_RedirectsInternalNamespace(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("redirects must not reach the engine")
	})

	edge := NewEdgeHandler(next, edgeTestLookups())

	req := httptest.NewRequest(http.MethodGet, "/site/foo", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()

	edge.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestEdgeHandler_PassesAPIRoutesThrough(t *testing.T) {
	var served string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	edge := NewEdgeHandler(next, edgeTestLookups())

	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/session", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()

	edge.ServeHTTP(rec, req)

	assert.Equal(t, "/api/rsvp/session", served)
}

func TestEdgeHandler_UnknownHostServesNotFound(t *testing.T) {
	var served string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
	})

	edge := NewEdgeHandler(next, edgeTestLookups())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "nobody.example.com"
	rec := httptest.NewRecorder()

	edge.ServeHTTP(rec, req)

	assert.Equal(t, "/404", served)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
