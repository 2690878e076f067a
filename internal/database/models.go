package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Order is one checkout submission. Line items are embedded in the row as
// jsonb, mirroring the document shape the ordering pages work with.
type Order struct {
	ID           uuid.UUID
	CustomerName string
	TableNumber  string
	Items        []LineItem
	TotalPrice   pgtype.Numeric
	OrderType    string
	PaymentType  string
	CreatedAt    time.Time
}

// LineItem is one product line within an order. Price keeps the ₹-prefixed
// string exactly as submitted; TotalItemPrice is the computed extension with
// two decimal places and no symbol.
type LineItem struct {
	Title          string `json:"title"`
	Price          string `json:"price"`
	Quantity       int32  `json:"quantity"`
	TotalItemPrice string `json:"totalItemPrice"`
}

// EarningsRecord is one calendar date's aggregated revenue. Date is the
// natural key, in YYYY-MM-DD form.
type EarningsRecord struct {
	Date          string
	TotalEarnings pgtype.Numeric
}
