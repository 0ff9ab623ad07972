package domain

type Route string

const (
	RouteHome  Route = "/"
	RouteLogin Route = "/login"
)

// Destination holds the access requirements of the route being navigated to.
type Destination struct {
	RequiresAuth  bool
	RequiresAdmin bool
	GuestsOnly    bool
}

type NavigationIntent struct {
	Path        string
	Destination Destination
}

type Decision struct {
	RedirectTo Route
}

func Allow() Decision {
	return Decision{}
}

func RedirectTo(route Route) Decision {
	return Decision{RedirectTo: route}
}

func (d Decision) Allowed() bool {
	return d.RedirectTo == ""
}

// DecideNavigation applies the first matching rule: guests only, authentication, admin role.
// A token that cannot be decoded never grants admin access.
func DecideNavigation(intent NavigationIntent, token Token) Decision {
	destination := intent.Destination
	switch {
	case destination.GuestsOnly && !token.IsEmpty():
		return RedirectTo(RouteHome)
	case destination.RequiresAuth && token.IsEmpty():
		return RedirectTo(RouteLogin)
	case destination.RequiresAdmin:
		return decideAdminNavigation(token)
	default:
		return Allow()
	}
}

func decideAdminNavigation(token Token) Decision {
	if token.IsEmpty() {
		return RedirectTo(RouteLogin)
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		return RedirectTo(RouteLogin)
	}
	if !claims.IsAdmin() {
		return RedirectTo(RouteHome)
	}

	return Allow()
}
