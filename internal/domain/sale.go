package domain

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentCard     PaymentMethod = "Card"
	PaymentTransfer PaymentMethod = "Transfer"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}

// SaleLine is one sold product inside a sale. Name and Price are snapshots
// of the product at the moment of sale, so later catalog edits never
// rewrite history.
type SaleLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Sale is a completed point-of-sale transaction. Sales are append-only and
// the date is fixed to the creation day, never user-editable.
type Sale struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Products      []SaleLine    `json:"products"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
