package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TheGeniusEditor/Sultan/internal/currency"
	"github.com/TheGeniusEditor/Sultan/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Errors returned by the checkout service.
var (
	ErrInvalidItemPrice  = errors.New("invalid item price")
	ErrInvalidTotalPrice = errors.New("invalid total price")
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CheckoutStore defines the DB methods needed to finalize a cart.
// Satisfied by *database.Queries (and its WithTx variant).
type CheckoutStore interface {
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	AddDailyEarnings(ctx context.Context, arg database.AddDailyEarningsParams) (database.EarningsRecord, error)
}

// NewCheckoutStore creates a CheckoutStore from a DBTX (pool or tx).
// This allows the service to create store instances from transactions.
type NewCheckoutStore func(db database.DBTX) CheckoutStore

// CheckoutRequest is the submitted cart. Price fields arrive as ₹-prefixed
// strings, exactly as the ordering pages send them.
type CheckoutRequest struct {
	CustomerName string
	TableNumber  string
	CartItems    []CartItemRequest
	TotalPrice   string
	OrderType    string
	PaymentType  string
}

// CartItemRequest is a single cart line.
type CartItemRequest struct {
	Title    string
	Price    string
	Quantity int32
}

// CheckoutResult is the persisted order and the day's updated earnings.
type CheckoutResult struct {
	Order    database.Order
	Earnings database.EarningsRecord
}

// CheckoutService finalizes carts: computes line totals, persists the order,
// and rolls the order total into the day's earnings.
type CheckoutService struct {
	pool     TxBeginner
	newStore NewCheckoutStore
	now      func() time.Time
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(pool TxBeginner, newStore NewCheckoutStore) *CheckoutService {
	return &CheckoutService{pool: pool, newStore: newStore, now: time.Now}
}

// Checkout computes each line's extended price, then inserts the order and
// increments today's earnings in a single transaction, so a failure between
// the two writes cannot leave earnings out of step with orders. "Today" is
// the server-local date.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	total, err := currency.Parse(req.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("totalPrice %q: %w", req.TotalPrice, ErrInvalidTotalPrice)
	}

	items := make([]database.LineItem, len(req.CartItems))
	for i, item := range req.CartItems {
		price, err := currency.Parse(item.Price)
		if err != nil {
			return nil, fmt.Errorf("cartItems[%d]: %w", i, ErrInvalidItemPrice)
		}
		lineTotal := price.Mul(decimal.NewFromInt32(item.Quantity)).Round(2)
		items[i] = database.LineItem{
			Title:          item.Title,
			Price:          item.Price,
			Quantity:       item.Quantity,
			TotalItemPrice: lineTotal.StringFixed(2),
		}
	}

	totalNumeric, err := database.NumericFromDecimal(total)
	if err != nil {
		return nil, fmt.Errorf("convert total: %w", err)
	}

	today := s.now().Format("2006-01-02")

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	order, err := store.CreateOrder(ctx, database.CreateOrderParams{
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Items:        items,
		TotalPrice:   totalNumeric,
		OrderType:    req.OrderType,
		PaymentType:  req.PaymentType,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	earnings, err := store.AddDailyEarnings(ctx, database.AddDailyEarningsParams{
		Date:   today,
		Amount: totalNumeric,
	})
	if err != nil {
		return nil, fmt.Errorf("add daily earnings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &CheckoutResult{Order: order, Earnings: earnings}, nil
}
