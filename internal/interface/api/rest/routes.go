package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth   = RouteApiV1 + "/auth"
	RouteLogin  = RouteAuth + "/login"
	RouteLogout = RouteAuth + "/logout"

	// signup
	RouteSignup = RouteApiV1 + "/signup"

	RoutePersons                  = RouteApiV1 + "/persons"
	RoutePerson                   = RoutePersons + "/:person_id"
	RoutePersonDonations          = RoutePerson + "/donations"
	RoutePersonRequestedDonations = RoutePerson + "/requested-donations"

	RouteAccounts = RouteApiV1 + "/accounts"
	RouteAccount  = RouteAccounts + "/:account_id"

	RouteCategories = RouteApiV1 + "/categories"

	RouteDonations      = RouteApiV1 + "/donations"
	RouteDonation       = RouteDonations + "/:donation_id"
	RouteDonationStatus = RouteDonation + "/status"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
