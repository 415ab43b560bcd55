package domain

// Provider is a supplier company referenced by products and purchase
// orders. Deletion is always soft (IsActive=false) and never cascades into
// the records that reference it.
type Provider struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Brand       string `json:"brand"`
	IsActive    bool   `json:"isActive"`
}
