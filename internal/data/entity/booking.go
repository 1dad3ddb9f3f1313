package entity

// Booking is immutable once persisted; CreatedAt is assigned by the store.
type Booking struct {
	Base
	MovieID      int64  `db:"movie_id"`
	CustomerName string `db:"customer_name"`
	SeatsBooked  int    `db:"seats_booked"`
}
