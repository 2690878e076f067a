package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO orders (id, customer_name, table_number, items, total_price, order_type, payment_type)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, customer_name, table_number, items, total_price, order_type, payment_type, created_at
`

// CreateOrderParams are the fields persisted for a new order.
type CreateOrderParams struct {
	CustomerName string
	TableNumber  string
	Items        []LineItem
	TotalPrice   pgtype.Numeric
	OrderType    string
	PaymentType  string
}

// CreateOrder inserts a new order and returns the stored row.
func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	itemsJSON, err := json.Marshal(arg.Items)
	if err != nil {
		return Order{}, fmt.Errorf("marshal items: %w", err)
	}

	row := q.db.QueryRow(ctx, createOrder,
		uuid.New(),
		arg.CustomerName,
		arg.TableNumber,
		itemsJSON,
		arg.TotalPrice,
		arg.OrderType,
		arg.PaymentType,
	)
	return scanOrder(row)
}

const listOrders = `
SELECT id, customer_name, table_number, items, total_price, order_type, payment_type, created_at
FROM orders
ORDER BY created_at DESC
`

// ListOrders returns all orders, newest first. The kitchen display polls this.
func (q *Queries) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const deleteAllOrders = `DELETE FROM orders`

// DeleteAllOrders removes every order. Invoked by the midnight scheduler.
func (q *Queries) DeleteAllOrders(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllOrders)
	return err
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var itemsJSON []byte
	if err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.TableNumber,
		&itemsJSON,
		&o.TotalPrice,
		&o.OrderType,
		&o.PaymentType,
		&o.CreatedAt,
	); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return Order{}, fmt.Errorf("unmarshal items: %w", err)
	}
	return o, nil
}
