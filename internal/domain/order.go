package domain

import "time"

// DateLayout is the calendar-day format used for order and sale dates.
// Dates are stored as plain strings so that stored collections round-trip
// byte for byte and the daily sales series can match on string equality.
const DateLayout = "2006-01-02"

// Day formats a timestamp as a calendar day in DateLayout.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// OrderStatusReceived is the only order status in the current scope;
// every order is created already received.
const OrderStatusReceived = "Received"

// OrderLine is one requested product inside a purchase order. Name is a
// snapshot of the product name at creation time.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Order is an incoming purchase order from a provider. Orders are
// append-only: once created they are never edited or deactivated.
type Order struct {
	ID            string      `json:"id"`
	ProviderID    string      `json:"providerId"`
	ReceptionDate string      `json:"receptionDate"`
	GuideNumber   string      `json:"guideNumber,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Status        string      `json:"status"`
	Products      []OrderLine `json:"products"`
	TotalCost     float64     `json:"totalCost,omitempty"`
}
