package types

// Route is one of mutually exclusive application screens.
type Route uint8

const (
	RouteWelcome Route = iota
	RouteStartup
	RouteOnboarding
	RouteHome
	RoutePhraseValidation
	RoutePhraseDisplay
)

func (r Route) String() string {
	switch r {
	case RouteWelcome:
		return "welcome"
	case RouteStartup:
		return "startup"
	case RouteOnboarding:
		return "onboarding"
	case RouteHome:
		return "home"
	case RoutePhraseValidation:
		return "phrase validation"
	case RoutePhraseDisplay:
		return "phrase display"
	default:
		return "unknown"
	}
}

// RouteState is the current route together with the one it replaced.
// Both fields are only changed through Set.
type RouteState struct {
	current  Route
	previous Route
}

// NewRouteState returns a state positioned at route with no meaningful predecessor.
func NewRouteState(route Route) RouteState {
	return RouteState{current: route, previous: route}
}

// Current returns the active route.
func (s RouteState) Current() Route { return s.current }

// Previous returns the route that was active before the last Set.
func (s RouteState) Previous() Route { return s.previous }

// Set moves to route and remembers the replaced one.
func (s RouteState) Set(route Route) RouteState {
	return RouteState{current: route, previous: s.current}
}
