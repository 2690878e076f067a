package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const addDailyEarnings = `
INSERT INTO earnings_records (date, total_earnings)
VALUES ($1, $2)
ON CONFLICT (date) DO UPDATE
SET total_earnings = earnings_records.total_earnings + EXCLUDED.total_earnings
RETURNING date, total_earnings
`

// AddDailyEarningsParams identify the date and the amount to add to it.
type AddDailyEarningsParams struct {
	Date   string
	Amount pgtype.Numeric
}

// AddDailyEarnings adds an amount to a date's earnings total, creating the
// record if it does not exist. The upsert makes the increment atomic, so
// concurrent checkouts for the same date cannot lose updates.
func (q *Queries) AddDailyEarnings(ctx context.Context, arg AddDailyEarningsParams) (EarningsRecord, error) {
	var rec EarningsRecord
	err := q.db.QueryRow(ctx, addDailyEarnings, arg.Date, arg.Amount).
		Scan(&rec.Date, &rec.TotalEarnings)
	return rec, err
}

const setDailyEarnings = `
INSERT INTO earnings_records (date, total_earnings)
VALUES ($1, $2)
ON CONFLICT (date) DO UPDATE
SET total_earnings = EXCLUDED.total_earnings
RETURNING date, total_earnings
`

// SetDailyEarningsParams identify the date and the value to store for it.
type SetDailyEarningsParams struct {
	Date          string
	TotalEarnings pgtype.Numeric
}

// SetDailyEarnings overwrites a date's earnings total unconditionally,
// creating the record if it does not exist. This is the explicit save API and
// deliberately does NOT increment.
func (q *Queries) SetDailyEarnings(ctx context.Context, arg SetDailyEarningsParams) (EarningsRecord, error) {
	var rec EarningsRecord
	err := q.db.QueryRow(ctx, setDailyEarnings, arg.Date, arg.TotalEarnings).
		Scan(&rec.Date, &rec.TotalEarnings)
	return rec, err
}

const getEarningsRecord = `
SELECT date, total_earnings
FROM earnings_records
WHERE date = $1
`

// GetEarningsRecord returns the earnings record for a date.
func (q *Queries) GetEarningsRecord(ctx context.Context, date string) (EarningsRecord, error) {
	var rec EarningsRecord
	err := q.db.QueryRow(ctx, getEarningsRecord, date).
		Scan(&rec.Date, &rec.TotalEarnings)
	return rec, err
}

const listEarningsRecords = `
SELECT date, total_earnings
FROM earnings_records
ORDER BY date
`

// ListEarningsRecords returns all earnings records.
func (q *Queries) ListEarningsRecords(ctx context.Context) ([]EarningsRecord, error) {
	rows, err := q.db.Query(ctx, listEarningsRecords)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []EarningsRecord{}
	for rows.Next() {
		var rec EarningsRecord
		if err := rows.Scan(&rec.Date, &rec.TotalEarnings); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
