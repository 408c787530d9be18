package auth

// RoutePolicy is the static allow-list consulted by the gate before each
// request. Any route not explicitly listed requires authentication; there is
// no prefix matching, only exact (method, path) entries.
type RoutePolicy struct {
	bypass map[routeKey]struct{}
}

type routeKey struct {
	method string
	path   string
}

// NewRoutePolicy returns an empty, fail-closed policy.
func NewRoutePolicy() *RoutePolicy {
	return &RoutePolicy{bypass: make(map[routeKey]struct{})}
}

// Bypass marks a route as exempt from authentication. Returns the policy for
// chaining during construction; the policy is read-only once the gate runs.
func (p *RoutePolicy) Bypass(method, path string) *RoutePolicy {
	p.bypass[routeKey{method: method, path: path}] = struct{}{}
	return p
}

// IsBypassed reports whether the route may proceed without a token.
func (p *RoutePolicy) IsBypassed(method, path string) bool {
	_, ok := p.bypass[routeKey{method: method, path: path}]
	return ok
}

// ResourceRoutePolicy lists the resource-service routes known safe without a
// token: the status and health probes, plus the credential-store routes the
// account service itself calls to implement registration and login.
func ResourceRoutePolicy() *RoutePolicy {
	return NewRoutePolicy().
		Bypass("GET", "/").
		Bypass("GET", "/health/live").
		Bypass("GET", "/health/ready").
		Bypass("GET", "/customers").
		Bypass("POST", "/customers")
}
