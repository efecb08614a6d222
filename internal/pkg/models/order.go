package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// OrderItem is a single line of an order. Price is the catalog unit price at
// the time the order was placed.
type OrderItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// Subtotal returns price * quantity
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderItems is stored as a JSONB column
type OrderItems []OrderItem

// Value implements driver.Valuer
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner
func (o *OrderItems) Scan(src interface{}) error {
	return scanJSON(src, o)
}

// Order represents a placed order
type Order struct {
	ID               string          `json:"id" db:"id"`
	Items            OrderItems      `json:"items" db:"items"`
	Total            decimal.Decimal `json:"total" db:"total"`
	CustomerEmail    string          `json:"customer_email" db:"customer_email"`
	Status           OrderStatus     `json:"status" db:"status"`
	PaymentSessionID *string         `json:"payment_session_id,omitempty" db:"payment_session_id"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// CreateOrderRequest is the payload for placing an order. Item prices and
// Total are accepted for compatibility but never trusted.
type CreateOrderRequest struct {
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	CustomerEmail string          `json:"customer_email"`
}

// CustomOrder represents a custom design request
type CustomOrder struct {
	ID          string    `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	CustomText  *string   `json:"custom_text" db:"custom_text"`
	Description *string   `json:"description" db:"description"`
	FileName    *string   `json:"file_name" db:"file_name"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateCustomOrderRequest is the payload for submitting a custom design
type CreateCustomOrderRequest struct {
	Email       string  `json:"email"`
	CustomText  *string `json:"custom_text"`
	Description *string `json:"description"`
	FileName    *string `json:"file_name"`
}

func scanJSON(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for JSON column")
	}
}
