package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"evervow/models"
	"evervow/services/routing"
	"evervow/utils"
)

// edgeHandler applies the tenant routing decision before the gin engine
// dispatches a route. Rewrites mutate the request path internally; redirects
// go back to the client.
type edgeHandler struct {
	next    http.Handler
	lookups routing.Lookups
}

// NewEdgeHandler wraps next (normally the gin engine) with host-based
// multi-tenant routing.
func NewEdgeHandler(next http.Handler, lookups routing.Lookups) http.Handler {
	return &edgeHandler{next: next, lookups: lookups}
}

func (h *edgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := routing.Request{
		Host:           r.Host,
		Path:           r.URL.Path,
		IsAPIRoute:     strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/health",
		IsWelcomeRoute: r.URL.Path == "/welcome" || strings.HasPrefix(r.URL.Path, "/welcome/"),
	}

	decision := routing.Decide(r.Context(), req, h.lookups)

	switch decision.Action {
	case models.RoutingRewrite:
		utils.GetLogger().Debug("Tenant routing rewrite",
			zap.String("host", r.Host),
			zap.String("from", r.URL.Path),
			zap.String("to", decision.Path),
		)
		r.URL.Path = decision.Path
		h.next.ServeHTTP(w, r)
	case models.RoutingRedirect:
		http.Redirect(w, r, decision.Path, http.StatusTemporaryRedirect)
	default:
		h.next.ServeHTTP(w, r)
	}
}
