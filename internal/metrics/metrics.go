// Package metrics derives dashboard aggregates from a snapshot of the
// entity stores. Every function is a pure computation over its inputs and
// the supplied "now" timestamp; nothing here holds state, so values are
// recomputed on each read and always reflect the latest mutation.
package metrics

import (
	"sort"
	"time"

	"shopstock/internal/domain"
)

// DailyTotal is one day of the trailing sales series.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type        string  `json:"type"` // "sale" or "order"
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Total       float64 `json:"total,omitempty"`
}

// TotalActiveProducts counts products that have not been soft-deleted.
func TotalActiveProducts(products []domain.Product) int {
	n := 0
	for i := range products {
		if products[i].IsActive {
			n++
		}
	}
	return n
}

// InventoryValue is the sale value of everything on the shelf: the sum of
// price times stock across active products.
func InventoryValue(products []domain.Product) float64 {
	var total float64
	for i := range products {
		if products[i].IsActive {
			total += products[i].Price * float64(products[i].Stock)
		}
	}
	return total
}

// LowStock returns the active products whose stock has fallen below their
// minimum threshold, sorted ascending by stock so the most depleted come
// first. Inactive products never appear regardless of their stock.
func LowStock(products []domain.Product) []domain.Product {
	var low []domain.Product
	for i := range products {
		if products[i].IsActive && products[i].Stock < products[i].MinStock {
			low = append(low, products[i])
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Stock < low[j].Stock
	})
	return low
}

// SalesToday sums the totals of sales whose date is exactly today.
func SalesToday(sales []domain.Sale, now time.Time) float64 {
	today := domain.Day(now)

	var total float64
	for i := range sales {
		if sales[i].Date == today {
			total += sales[i].Total
		}
	}
	return total
}

// SalesInPeriod sums the totals of sales dated within the trailing number
// of days, inclusive of the boundary day. Dates are ISO calendar-day
// strings, so the window check is a lexicographic comparison.
func SalesInPeriod(sales []domain.Sale, now time.Time, days int) float64 {
	cutoff := domain.Day(now.AddDate(0, 0, -days))

	var total float64
	for i := range sales {
		if sales[i].Date >= cutoff {
			total += sales[i].Total
		}
	}
	return total
}

// TrendPercent is the percentage change from previous to current. A zero
// previous period yields 0 rather than a division by zero.
func TrendPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// MostUsedProvider returns the provider referenced by the most orders.
// Ties are broken by whichever provider was encountered first in order
// iteration; this is arbitrary but deterministic. The boolean is false
// when there are no orders or the winning id resolves to no provider.
func MostUsedProvider(orders []domain.Order, providers []domain.Provider) (domain.Provider, bool) {
	counts := make(map[string]int)
	var seen []string
	for i := range orders {
		id := orders[i].ProviderID
		if _, ok := counts[id]; !ok {
			seen = append(seen, id)
		}
		counts[id]++
	}

	bestID, bestCount := "", 0
	for _, id := range seen {
		if counts[id] > bestCount {
			bestID, bestCount = id, counts[id]
		}
	}
	if bestID == "" {
		return domain.Provider{}, false
	}

	for i := range providers {
		if providers[i].ID == bestID {
			return providers[i], true
		}
	}
	return domain.Provider{}, false
}

// MostSoldProduct returns the product with the highest summed quantity
// across sales within the trailing window (in days). Same tie-break rule
// as MostUsedProvider.
func MostSoldProduct(sales []domain.Sale, products []domain.Product, now time.Time, windowDays int) (domain.Product, bool) {
	cutoff := domain.Day(now.AddDate(0, 0, -windowDays))

	quantities := make(map[string]int)
	var seen []string
	for i := range sales {
		if sales[i].Date < cutoff {
			continue
		}
		for _, line := range sales[i].Products {
			if _, ok := quantities[line.ProductID]; !ok {
				seen = append(seen, line.ProductID)
			}
			quantities[line.ProductID] += line.Quantity
		}
	}

	bestID, bestQty := "", 0
	for _, id := range seen {
		if quantities[id] > bestQty {
			bestID, bestQty = id, quantities[id]
		}
	}
	if bestID == "" {
		return domain.Product{}, false
	}

	for i := range products {
		if products[i].ID == bestID {
			return products[i], true
		}
	}
	return domain.Product{}, false
}

// DailySales returns one total per calendar day for the trailing seven
// days, oldest first. A sale contributes only when its date string matches
// the day exactly; days without sales show zero.
func DailySales(sales []domain.Sale, now time.Time) []DailyTotal {
	series := make([]DailyTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		series = append(series, DailyTotal{Date: domain.Day(now.AddDate(0, 0, -i))})
	}

	for i := range sales {
		for j := range series {
			if series[j].Date == sales[i].Date {
				series[j].Total += sales[i].Total
				break
			}
		}
	}
	return series
}

// ProfitMargin estimates the margin of the whole inventory: revenue at
// sale prices against estimated cost, over all products whether active or
// not. Products without a cost price fall back to their sale price. A zero
// revenue yields 0.
func ProfitMargin(products []domain.Product) float64 {
	var revenue, cost float64
	for i := range products {
		stock := float64(products[i].Stock)
		revenue += products[i].Price * stock
		cost += products[i].UnitCost() * stock
	}
	if revenue == 0 {
		return 0
	}
	return (revenue - cost) / revenue * 100
}

// RecentActivity merges the five most recent sales and the five most
// recent orders, re-sorts the union descending by date and keeps the top
// five entries.
func RecentActivity(sales []domain.Sale, orders []domain.Order, providers []domain.Provider) []Activity {
	recentSales := make([]domain.Sale, len(sales))
	copy(recentSales, sales)
	sort.SliceStable(recentSales, func(i, j int) bool {
		return recentSales[i].Date > recentSales[j].Date
	})
	if len(recentSales) > 5 {
		recentSales = recentSales[:5]
	}

	recentOrders := make([]domain.Order, len(orders))
	copy(recentOrders, orders)
	sort.SliceStable(recentOrders, func(i, j int) bool {
		return recentOrders[i].ReceptionDate > recentOrders[j].ReceptionDate
	})
	if len(recentOrders) > 5 {
		recentOrders = recentOrders[:5]
	}

	providerNames := make(map[string]string, len(providers))
	for i := range providers {
		providerNames[providers[i].ID] = providers[i].CompanyName
	}

	activities := make([]Activity, 0, len(recentSales)+len(recentOrders))
	for i := range recentSales {
		activities = append(activities, Activity{
			Type:        "sale",
			Date:        recentSales[i].Date,
			Description: saleDescription(recentSales[i]),
			Total:       recentSales[i].Total,
		})
	}
	for i := range recentOrders {
		activities = append(activities, Activity{
			Type:        "order",
			Date:        recentOrders[i].ReceptionDate,
			Description: orderDescription(recentOrders[i], providerNames),
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date > activities[j].Date
	})
	if len(activities) > 5 {
		activities = activities[:5]
	}
	return activities
}
