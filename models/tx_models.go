package models

import (
	// External Packages
	"github.com/shopspring/decimal"
)

// TimestampLayout is the ISO-8601 layout used for Transaction.Timestamp, always in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

type Transaction struct {
	TxID             string  `json:"transaction_id"`
	Timestamp        string  `json:"timestamp"`
	CustomerID       string  `json:"customer_id"`
	Amount           Amount  `json:"amount"`
	Currency         string  `json:"currency"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	PSP              string  `json:"psp"`
	PaymentType      *string `json:"payment_type"`
	MerchantName     string  `json:"merchant_name"`
	MerchantCategory string  `json:"merchant_category"`
	Country          string  `json:"country"`
}

type Merchant struct {
	Name     string
	Category string
}

// Amount is a monetary value encoded as a JSON number with exactly two fractional digits.
type Amount struct {
	decimal.Decimal
}

func NewAmount(v float64) Amount {
	return Amount{decimal.NewFromFloat(v).Round(2)}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a Amount) String() string {
	return a.StringFixed(2)
}
