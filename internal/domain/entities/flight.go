package entities

import "time"

// Flight represents a bookable tour offering in the catalog. Despite the name
// these are excursion products, not airline flights.
type Flight struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Overview  string    `json:"overview" db:"overview"`
	Category  string    `json:"category" db:"category"`
	Price     float64   `json:"price" db:"price"`
	Rating    float64   `json:"rating" db:"rating"`
	MainImage string    `json:"mainImage" db:"main_image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FlightSummary is the projection of a flight attached to reservations and
// dashboard rows: {title, price, mainImage, category, rating}.
type FlightSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	MainImage string  `json:"mainImage"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
}

// Summary returns the reservation-facing projection of the flight.
func (f *Flight) Summary() *FlightSummary {
	return &FlightSummary{
		ID:        f.ID,
		Title:     f.Title,
		Price:     f.Price,
		MainImage: f.MainImage,
		Category:  f.Category,
		Rating:    f.Rating,
	}
}
