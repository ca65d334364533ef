package domain

// DateCapacity is one entry of the availability feed
type DateCapacity struct {
	Date      string // YYYY-MM-DD
	Committed int    // seats already booked
	QtyTotal  int
	Allowed   int // per-date cap
	Remaining int
}

// AvailabilityFeed is the sparse per-date capacity record of one product.
// A date missing from Entries has never been booked.
type AvailabilityFeed struct {
	SKU           string
	Success       bool
	Message       string
	TotalBookings int
	Entries       []DateCapacity
}

// DateAvailability is the resolved seat count for one calendar date
type DateAvailability struct {
	Date               string
	Remaining          int
	Allowed            int
	HasRecordedBooking bool
}

// Exceeds returns true if the quantity cannot be seated on this date
func (a *DateAvailability) Exceeds(quantity int) bool {
	return quantity > a.Remaining
}

// IsSoldOut returns true if no seats remain
func (a *DateAvailability) IsSoldOut() bool {
	return a.Remaining <= 0
}

// IsLimited returns true if only a few seats remain
func (a *DateAvailability) IsLimited(threshold int) bool {
	return a.Remaining > 0 && a.Remaining <= threshold
}
