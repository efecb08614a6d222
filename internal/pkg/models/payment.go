package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the provider-reported payment state
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusExpired PaymentStatus = "expired"
)

// TransactionStatus is the local lifecycle state of a payment transaction
type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "initiated"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusExpired   TransactionStatus = "expired"
)

// Metadata keys written on every checkout session and transaction
const (
	MetadataOrderID       = "order_id"
	MetadataCustomerEmail = "customer_email"
	MetadataSource        = "source"
	MetadataSessionID     = "stripe_session_id"
)

// Metadata is stored as a JSONB column
type Metadata map[string]string

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// PaymentTransaction tracks a hosted checkout session. It is created once per
// session and afterwards only its status fields and UpdatedAt change.
type PaymentTransaction struct {
	ID            string            `json:"id" db:"id"`
	SessionID     string            `json:"session_id" db:"session_id"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	Currency      string            `json:"currency" db:"currency"`
	CustomerEmail string            `json:"customer_email" db:"customer_email"`
	PaymentStatus PaymentStatus     `json:"payment_status" db:"payment_status"`
	Status        TransactionStatus `json:"status" db:"status"`
	Metadata      Metadata          `json:"metadata" db:"metadata"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// IsSettled reports whether the transaction reached its terminal paid state
func (t *PaymentTransaction) IsSettled() bool {
	return t.PaymentStatus == PaymentStatusPaid && t.Status == TransactionStatusCompleted
}

// OrderID returns the originating order id from metadata
func (t *PaymentTransaction) OrderID() string {
	return t.Metadata[MetadataOrderID]
}

// CheckoutRequest is the payload for creating a checkout session
type CheckoutRequest struct {
	OrderID       string `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	OriginURL     string `json:"origin_url"`
}

// CheckoutSessionParams is what gets submitted to the checkout provider.
// AmountMinor is in the currency's minor units.
type CheckoutSessionParams struct {
	AmountMinor   int64
	Currency      string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// CheckoutSession is returned to the client after a session is created
type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	URL         string `json:"url"`
	AmountTotal int64  `json:"amount_total"`
	Currency    string `json:"currency"`
}

// ProviderSessionStatus is the provider's current view of a session,
// already translated into local status terms.
type ProviderSessionStatus struct {
	SessionID     string
	PaymentStatus PaymentStatus
	Status        TransactionStatus
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

// CheckoutStatus is the result of reconciling a session
type CheckoutStatus struct {
	SessionID     string            `json:"session_id"`
	Status        TransactionStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// TransactionUpdate is a conditional status write for one session. When
// OrderID is set and PaymentStatus is paid, the order is flipped to paid in
// the same database transaction.
type TransactionUpdate struct {
	SessionID     string
	PaymentStatus PaymentStatus
	Status        TransactionStatus
	UpdatedAt     time.Time
	OrderID       string
}

// SettleResult reports which conditional writes took effect
type SettleResult struct {
	TransactionUpdated bool
	OrderMarkedPaid    bool
}

// WebhookEvent is a verified provider event
type WebhookEvent struct {
	ID        string
	Type      string
	SessionID string
}

// WebhookAck acknowledges a processed webhook delivery
type WebhookAck struct {
	Status    string `json:"status"`
	EventType string `json:"event_type"`
}
