package domain

// Default booking values
const (
	DefaultAllowedSeats             = 12
	DefaultLowAvailabilityThreshold = 3
	DefaultCountryCode              = "US"
)

// Option titles the storefront catalog uses for the tour products
const (
	TourDateOptionTitle      = "Tour Date"
	CruiseShipOptionTitle    = "Are you Coming in Cruise Ship?"
	CruiseShipYesValueTitle  = "YES"
	ShipArrivalOptionTitle   = "Ship Arrival TIme"
	ShipDepartureOptionTitle = "Ship Departure TIme"
)

// Date format constants
const (
	DateFormat           = "2006-01-02"          // YYYY-MM-DD
	OptionDateWireFormat = "2006-01-02 15:04:05" // date answers are sent anchored to midnight
)

// MultiChoiceSeparator joins value identifiers of multi-choice answers
const MultiChoiceSeparator = ","
