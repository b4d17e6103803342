package models

// RoutingAction is the kind of decision the tenant router makes.
type RoutingAction string

const (
	// RoutingNone lets the request pass through untouched.
	RoutingNone RoutingAction = "none"
	// RoutingRewrite serves a different internal path without changing the URL.
	RoutingRewrite RoutingAction = "rewrite"
	// RoutingRedirect sends a real HTTP redirect to correct the client's URL.
	RoutingRedirect RoutingAction = "redirect"
)

// RoutingDecision is a pure value; it has no effect until the edge applies it.
type RoutingDecision struct {
	Action RoutingAction `json:"action"`
	Path   string        `json:"path,omitempty"`
}

// PassThrough is the no-op decision.
func PassThrough() RoutingDecision {
	return RoutingDecision{Action: RoutingNone}
}

// RewriteTo serves path internally without changing the browser URL.
func RewriteTo(path string) RoutingDecision {
	return RoutingDecision{Action: RoutingRewrite, Path: path}
}

// RedirectTo issues a real HTTP redirect to path.
func RedirectTo(path string) RoutingDecision {
	return RoutingDecision{Action: RoutingRedirect, Path: path}
}
