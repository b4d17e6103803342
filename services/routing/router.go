package routing

import (
	"context"
	"strings"

	"evervow/models"
)

// Request is the routing-relevant slice of an inbound request.
type Request struct {
	Host           string
	Path           string
	IsAPIRoute     bool
	IsWelcomeRoute bool
}

// Lookups supplies tenant resolution. Absence is ("", nil); failures are
// errors. Callers wire these to the wedding store with whatever caching
// policy they want.
type Lookups struct {
	WeddingIDByApexDomain func(ctx context.Context, domain string) (string, error)
	WeddingIDBySubdomain  func(ctx context.Context, subdomain string) (string, error)
}

// Decide maps an inbound (host, path) to a routing decision. It is a pure
// function of its inputs and the lookup responses: identical calls yield
// identical decisions.
//
// Lookup failures never escape; they degrade to a /404 rewrite so a broken
// tenant store shows guests a not-found page, never a server error.
func Decide(ctx context.Context, req Request, lookups Lookups) models.RoutingDecision {
	// API and onboarding routes are host-routing-exempt.
	if req.IsAPIRoute || req.IsWelcomeRoute {
		return models.PassThrough()
	}

	host := stripPort(req.Host)
	subdomain, isTenant := tenantSubdomain(host)

	if !isTenant {
		// The /site namespace is internal; direct hits must not resolve.
		if strings.HasPrefix(req.Path, "/site") {
			return models.RewriteTo("/404")
		}
		id, err := lookups.WeddingIDByApexDomain(ctx, host)
		if err != nil || id == "" {
			return models.RewriteTo("/404")
		}
		path := req.Path
		if path == "/" {
			path = ""
		}
		return models.RewriteTo("/site/" + host + path)
	}

	// The dashboard lives on the base host only.
	if strings.HasPrefix(req.Path, "/dashboard") {
		return models.RewriteTo("/404")
	}
	// A tenant URL pointing into the internal namespace gets a real
	// redirect so the client's URL bar is corrected.
	if strings.HasPrefix(req.Path, "/site") {
		return models.RedirectTo("/")
	}
	id, err := lookups.WeddingIDBySubdomain(ctx, subdomain)
	if err != nil || id == "" {
		return models.RewriteTo("/404")
	}
	return models.RewriteTo("/tenant/" + subdomain + req.Path)
}

// tenantSubdomain classifies the host. A tenant host has at least three
// labels and a first label that is not platform-reserved; everything else
// (apex domains, reserved labels, bare hosts) is a base host.
func tenantSubdomain(host string) (string, bool) {
	labels := strings.Split(strings.ToLower(host), ".")
	if len(labels) < 3 {
		return "", false
	}
	first := labels[0]
	if first == "" || IsReservedSubdomain(first) {
		return "", false
	}
	return first, true
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i+1:], ".") {
		return host[:i]
	}
	return host
}
