package domain

// Product is a catalog item tracked in inventory.
//
// Stock is written only through the stock ledger (orders add, sales
// subtract) plus the administrator-only manual correction path. It is a
// plain int rather than an unsigned type because the ledger accepts
// negative results at commit time; the POS cart check is the only stock
// floor.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	Brand      string   `json:"brand"`
	Category   string   `json:"category"`
	CostPrice  *float64 `json:"costPrice,omitempty"`
	Price      float64  `json:"price"`
	Stock      int      `json:"stock"`
	ProviderID string   `json:"providerId"`
	MinStock   int      `json:"minStock"`
	IsActive   bool     `json:"isActive"`
}

// UnitCost returns the supplier cost, falling back to the sale price when
// no cost price was recorded.
func (p *Product) UnitCost() float64 {
	if p.CostPrice != nil {
		return *p.CostPrice
	}
	return p.Price
}
