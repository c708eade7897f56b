// Package router maps dashboard paths to pages and guards the ones that
// require a signed-in user.
package router

import (
	"github.com/zhubert/saasboard/internal/errors"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/observer"
)

const (
	PathLogin     = "/login"
	PathDashboard = "/"
	PathSettings  = "/settings"
)

// Route is one addressable page.
type Route struct {
	Path      string
	Title     string
	Protected bool
}

var routes = []Route{
	{Path: PathLogin, Title: "Sign in"},
	{Path: PathDashboard, Title: "Dashboard", Protected: true},
	{Path: PathSettings, Title: "Settings", Protected: true},
}

// Routes returns every known route.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup returns the route registered for path.
func Lookup(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Navigation is published after every completed navigation.
type Navigation struct {
	From      string
	To        string
	Requested string // differs from To when the guard redirected
}

// Redirected reports whether the guard changed the destination.
func (n Navigation) Redirected() bool {
	return n.Requested != n.To
}

// AuthState is the part of the auth holder the router consults.
type AuthState interface {
	IsAuthenticated() bool
}

// Router holds the current path.
type Router struct {
	current string
	auth    AuthState
	done    observer.Subject[Navigation]
}

// New returns a router positioned at the login page.
func New(auth AuthState) *Router {
	return &Router{current: PathLogin, auth: auth}
}

// Current returns the active path.
func (r *Router) Current() string {
	return r.current
}

// CurrentRoute returns the active route.
func (r *Router) CurrentRoute() Route {
	rt, _ := Lookup(r.current)
	return rt
}

// Navigate moves to path and returns the path actually landed on. Protected
// paths redirect to the login page while signed out; the login page
// redirects to the dashboard while signed in.
func (r *Router) Navigate(path string) (string, error) {
	rt, ok := Lookup(path)
	if !ok {
		return r.current, errors.RouteNotFound(path)
	}

	dest := rt.Path
	signedIn := r.auth != nil && r.auth.IsAuthenticated()
	switch {
	case rt.Protected && !signedIn:
		dest = PathLogin
	case rt.Path == PathLogin && signedIn:
		dest = PathDashboard
	}

	nav := Navigation{From: r.current, To: dest, Requested: path}
	r.current = dest
	logger.WithComponent("router").Debug("navigated", "from", nav.From, "to", nav.To, "requested", path)
	r.done.Notify(nav)
	return dest, nil
}

// Subscribe registers fn to run after every completed navigation, including
// navigations to the current path.
func (r *Router) Subscribe(fn func(Navigation)) (unsubscribe func()) {
	return r.done.Subscribe(fn)
}
