package entity

// Reservation is the locally cached view of a provider calendar event. The
// provider copy is the source of truth; a record exists here only after the
// provider confirmed the corresponding operation.
type Reservation struct {
	EventID           string `json:"eventId" db:"event_id"`
	Date              string `json:"date" db:"date"`
	Time              string `json:"time" db:"time"`
	PartySize         int    `json:"partySize" db:"party_size"`
	Email             string `json:"email" db:"email"`
	RestaurantName    string `json:"restaurantName" db:"restaurant_name"`
	RestaurantAddress string `json:"restaurantAddress" db:"restaurant_address"`
	Name              string `json:"name" db:"name"`
	UserID            string `json:"userId,omitempty" db:"user_id"`
}
