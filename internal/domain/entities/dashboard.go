package entities

// DashboardStats holds the headline totals and trailing-30-day growth figures.
// Growth values are signed whole percentages.
type DashboardStats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalFlights       int64   `json:"totalFlights"`
	TotalReservations  int64   `json:"totalReservations"`
	TotalCustomers     int64   `json:"totalCustomers"`
	RevenueGrowth      int     `json:"revenueGrowth"`
	FlightsGrowth      int     `json:"flightsGrowth"`
	ReservationsGrowth int     `json:"reservationsGrowth"`
	CustomersGrowth    int     `json:"customersGrowth"`
}

// FlightRanking is one row of the reservations-grouped-by-flight aggregate:
// a flight identity with its reservation count and summed revenue.
type FlightRanking struct {
	FlightID         string  `json:"flightId"`
	ReservationCount int64   `json:"reservationCount"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// TopFlight is a ranking row resolved against the flight catalog.
type TopFlight struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	Category         string  `json:"category"`
	Rating           float64 `json:"rating"`
	Price            float64 `json:"price"`
	MainImage        string  `json:"mainImage"`
	ReservationCount int64   `json:"reservationCount"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// CategoryStat pairs the flight count and reservation revenue recorded for one
// category. A side missing from either aggregate defaults to zero.
type CategoryStat struct {
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DashboardOverview is the full payload served by GET /api/dashboard/overview.
type DashboardOverview struct {
	Stats              DashboardStats          `json:"stats"`
	RecentReservations []*Reservation          `json:"recentReservations"`
	TopFlights         []TopFlight             `json:"topFlights"`
	CategoryStats      map[string]CategoryStat `json:"categoryStats"`
}
