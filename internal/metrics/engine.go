package metrics

import (
	"fmt"
	"time"

	"shopstock/internal/domain"
	"shopstock/internal/store"
)

// DefaultWindowDays is the trailing window used by the best-seller metric.
const DefaultWindowDays = 7

// Summary is the full dashboard payload.
type Summary struct {
	TotalProducts    int              `json:"totalProducts"`
	InventoryValue   float64          `json:"inventoryValue"`
	SalesToday       float64          `json:"salesToday"`
	SalesThisWeek    float64          `json:"salesThisWeek"`
	WeekTrendPercent float64          `json:"weekTrendPercent"`
	ProfitMargin     float64          `json:"profitMargin"`
	LowStock         []domain.Product `json:"lowStock"`
	MostUsedProvider *domain.Provider `json:"mostUsedProvider,omitempty"`
	MostSoldProduct  *domain.Product  `json:"mostSoldProduct,omitempty"`
	DailySales       []DailyTotal     `json:"dailySales"`
	RecentActivity   []Activity       `json:"recentActivity"`
}

// Engine reads the current snapshot of the entity stores and computes the
// dashboard aggregates. It is pull-based: nothing is cached or pushed, a
// read immediately after a mutation sees the mutated state.
type Engine struct {
	products  *store.ProductStore
	providers *store.ProviderStore
	orders    *store.OrderStore
	sales     *store.SaleStore
}

// NewEngine creates an Engine over the given stores.
func NewEngine(products *store.ProductStore, providers *store.ProviderStore, orders *store.OrderStore, sales *store.SaleStore) *Engine {
	return &Engine{products: products, providers: providers, orders: orders, sales: sales}
}

// Summary computes the whole dashboard from one snapshot at the given
// instant. The week trend compares the trailing seven days against the
// seven days before that.
func (e *Engine) Summary(now time.Time) Summary {
	products := e.products.List()
	providers := e.providers.List()
	orders := e.orders.List()
	sales := e.sales.List()

	thisWeek := SalesInPeriod(sales, now, 7)
	lastWeek := SalesInPeriod(sales, now, 14) - thisWeek

	s := Summary{
		TotalProducts:    TotalActiveProducts(products),
		InventoryValue:   InventoryValue(products),
		SalesToday:       SalesToday(sales, now),
		SalesThisWeek:    thisWeek,
		WeekTrendPercent: TrendPercent(thisWeek, lastWeek),
		ProfitMargin:     ProfitMargin(products),
		LowStock:         LowStock(products),
		DailySales:       DailySales(sales, now),
		RecentActivity:   RecentActivity(sales, orders, providers),
	}

	if p, ok := MostUsedProvider(orders, providers); ok {
		s.MostUsedProvider = &p
	}
	if p, ok := MostSoldProduct(sales, products, now, DefaultWindowDays); ok {
		s.MostSoldProduct = &p
	}
	return s
}

func saleDescription(s domain.Sale) string {
	return fmt.Sprintf("Sale of %d products for %.2f (%s)", len(s.Products), s.Total, s.Date)
}

func orderDescription(o domain.Order, providerNames map[string]string) string {
	name, ok := providerNames[o.ProviderID]
	if !ok {
		name = "Unknown Provider"
	}
	return fmt.Sprintf("New order of %d products from %s (%s)", len(o.Products), name, o.ReceptionDate)
}
