package routing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"evervow/models"
)

func fixtureLookups() Lookups {
	return Lookups{
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

func failingLookups() Lookups {
	return Lookups{
		WeddingIDByApexDomain: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("store unavailable")
		},
		WeddingIDBySubdomain: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("store unavailable")
		},
	}
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		req     Request
		lookups Lookups
		want    models.RoutingDecision
	}{
		{
			name:    "api routes pass through",
			req:     Request{Host: "acme.evervow.app", Path: "/api/rsvp/session", IsAPIRoute: true},
			lookups: fixtureLookups(),
			want:    models.PassThrough(),
		},
		{
			name:    "welcome routes pass through",
			req:     Request{Host: "evervow.app", Path: "/welcome", IsWelcomeRoute: true},
			lookups: fixtureLookups(),
			want:    models.PassThrough(),
		},
		{
			name:    "tenant host rewrites to tenant namespace",
			req:     Request{Host: "acme.example.com", Path: "/photos"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/tenant/acme/photos"),
		},
		{
			name:    "tenant host keeps root path",
			req:     Request{Host: "acme.example.com", Path: "/"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/tenant/acme/"),
		},
		{
			name:    "unknown subdomain rewrites to 404",
			req:     Request{Host: "ghost.example.com", Path: "/"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "subdomain lookup failure degrades to 404",
			req:     Request{Host: "acme.example.com", Path: "/photos"},
			lookups: failingLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "dashboard is never served from a tenant host",
			req:     Request{Host: "acme.example.com", Path: "/dashboard/guests"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "internal namespace from a tenant host redirects home",
			req:     Request{Host: "acme.example.com", Path: "/site/foo"},
			lookups: fixtureLookups(),
			want:    models.RedirectTo("/"),
		},
		{
			name:    "custom apex domain rewrites to site namespace",
			req:     Request{Host: "sallyandtom.com", Path: "/photos"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/site/sallyandtom.com/photos"),
		},
		{
			name:    "custom apex root path drops the duplicate slash",
			req:     Request{Host: "sallyandtom.com", Path: "/"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/site/sallyandtom.com"),
		},
		{
			name:    "unclaimed apex rewrites to 404",
			req:     Request{Host: "example.com", Path: "/"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "apex lookup failure degrades to 404",
			req:     Request{Host: "example.com", Path: "/"},
			lookups: failingLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "internal namespace on the base host never resolves",
			req:     Request{Host: "evervow.app", Path: "/site/acme"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "reserved subdomain is a base host",
			req:     Request{Host: "www.sallyandtom.com", Path: "/site/foo"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/404"),
		},
		{
			name:    "port is stripped before apex lookup",
			req:     Request{Host: "sallyandtom.com:8080", Path: "/photos"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/site/sallyandtom.com/photos"),
		},
		{
			name:    "host casing does not affect classification",
			req:     Request{Host: "ACME.example.com", Path: "/photos"},
			lookups: fixtureLookups(),
			want:    models.RewriteTo("/tenant/acme/photos"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(ctx, tc.req, tc.lookups)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecide_Idempotent(t *testing.T) {
	ctx := context.Background()
	req := Request{Host: "acme.example.com", Path: "/photos"}
	lookups := fixtureLookups()

	first := Decide(ctx, req, lookups)
	second := Decide(ctx, req, lookups)

	assert.Equal(t, first, second)
}

func TestIsReservedSubdomain(t *testing.T) {
	assert.True(t, IsReservedSubdomain("www"))
	assert.True(t, IsReservedSubdomain("Dashboard"))
	assert.True(t, IsReservedSubdomain("API"))
	assert.False(t, IsReservedSubdomain("acme"))
	assert.False(t, IsReservedSubdomain("sallyandtom"))
}
