package enum

// Order types as sent by the ordering pages. Payment type is free-form
// (cash, UPI, card, ...) and intentionally has no constant set.
const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
)
