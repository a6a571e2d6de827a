// Package nav holds the app's route table and back stack.
package nav

import "github.com/aphfiwiwi/biiscoti/internal/model"

// Route names a screen.
type Route string

// Routes.
const (
	Splash           Route = "splash"
	Login            Route = "login"
	Register         Route = "register"
	Home             Route = "home"
	Restaurants      Route = "restaurants"
	RestaurantsAdmin Route = "restaurants/admin"
	Bakery           Route = "bakery"
	BakeryAdmin      Route = "bakery/admin"
	Thrift           Route = "thrift"
	Jewelry          Route = "jewelry"
	Horticulture     Route = "horticulture"
	Hair             Route = "hair"
	Grocery          Route = "grocery"
	Search           Route = "search"
	Profile          Route = "profile"
	Contact          Route = "contact"
)

var categoryRoutes = map[model.Category]Route{
	model.CategoryRestaurant:   Restaurants,
	model.CategoryBakery:       Bakery,
	model.CategoryThrift:       Thrift,
	model.CategoryJewelry:      Jewelry,
	model.CategoryHorticulture: Horticulture,
	model.CategoryHair:         Hair,
	model.CategoryGrocery:      Grocery,
}

var adminRoutes = map[model.Category]Route{
	model.CategoryRestaurant: RestaurantsAdmin,
	model.CategoryBakery:     BakeryAdmin,
}

// All returns every route in menu order.
func All() []Route {
	return []Route{
		Splash, Login, Register, Home,
		Restaurants, RestaurantsAdmin, Bakery, BakeryAdmin,
		Thrift, Jewelry, Horticulture, Hair, Grocery,
		Search, Profile, Contact,
	}
}

// ForCategory returns the buyer route of c.
func ForCategory(c model.Category) Route {
	return categoryRoutes[c]
}

// AdminFor returns the admin route of c. Only restaurants and the bakery
// have one.
func AdminFor(c model.Category) (Route, bool) {
	r, ok := adminRoutes[c]
	return r, ok
}

// Category returns the category shown on r, for listing routes.
func (r Route) Category() (model.Category, bool) {
	for c, route := range categoryRoutes {
		if route == r {
			return c, true
		}
	}
	for c, route := range adminRoutes {
		if route == r {
			return c, true
		}
	}
	return "", false
}

// IsAdmin reports whether r is an admin editing route.
func (r Route) IsAdmin() bool {
	for _, route := range adminRoutes {
		if route == r {
			return true
		}
	}
	return false
}

func (r Route) String() string {
	return string(r)
}
