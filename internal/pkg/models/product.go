package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry
type Product struct {
	ID          int             `json:"id" db:"id"`
	Category    string          `json:"category" db:"category"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Image       string          `json:"image" db:"image"`
	Description string          `json:"description" db:"description"`
}
