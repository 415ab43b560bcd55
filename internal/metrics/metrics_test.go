package metrics

import (
	"testing"
	"time"

	"shopstock/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func cost(v float64) *float64 { return &v }

var testNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func TestInventoryValueSumsActiveProducts(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Price: 25.99, Stock: 15, IsActive: true},
		{ID: "2", Price: 12.50, Stock: 8, IsActive: true},
		{ID: "3", Price: 75.00, Stock: 4, IsActive: false},
	}

	got := InventoryValue(products)
	want := 25.99*15 + 12.50*8
	if got != want {
		t.Errorf("Expected inventory value %.2f, got %.2f", want, got)
	}
}

func TestProperty_InventoryValueScalesLinearlyWithStock(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a stock-only change moves the value by price times the delta", prop.ForAll(
		func(price float64, stock int, delta int) bool {
			before := []domain.Product{{ID: "1", Price: price, Stock: stock, IsActive: true}}
			after := []domain.Product{{ID: "1", Price: price, Stock: stock + delta, IsActive: true}}

			diff := InventoryValue(after) - InventoryValue(before)
			want := price * float64(delta)

			const epsilon = 1e-6
			return diff-want < epsilon && want-diff < epsilon
		},
		gen.Float64Range(0, 1000),
		gen.IntRange(-100, 100),
		gen.IntRange(-100, 100),
	))

	properties.TestingRun(t)
}

func TestLowStockExcludesInactiveAndSortsAscending(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "A", Stock: 4, MinStock: 5, IsActive: true},
		{ID: "2", Name: "B", Stock: -5, MinStock: 5, IsActive: true},
		{ID: "3", Name: "C", Stock: 1, MinStock: 5, IsActive: false},
		{ID: "4", Name: "D", Stock: 2, MinStock: 5, IsActive: true},
		{ID: "5", Name: "E", Stock: 10, MinStock: 5, IsActive: true},
	}

	low := LowStock(products)

	if len(low) != 3 {
		t.Fatalf("Expected 3 low-stock products, got %d", len(low))
	}
	for _, p := range low {
		if !p.IsActive {
			t.Errorf("Inactive product %s must never appear in low stock", p.ID)
		}
	}
	if low[0].ID != "2" || low[1].ID != "4" || low[2].ID != "1" {
		t.Errorf("Expected ascending stock order [2 4 1], got [%s %s %s]", low[0].ID, low[1].ID, low[2].ID)
	}
}

func TestSalesTodayMatchesExactDay(t *testing.T) {
	sales := []domain.Sale{
		{ID: "1", Date: "2024-03-15", Total: 50.99},
		{ID: "2", Date: "2024-03-14", Total: 100.00},
		{ID: "3", Date: "2024-03-10", Total: 7.25},
	}

	got := SalesToday(sales, testNow)
	if got != 50.99 {
		t.Errorf("Expected sales today 50.99, got %.2f", got)
	}
}

func TestSalesInPeriodIncludesBoundary(t *testing.T) {
	sales := []domain.Sale{
		{Date: "2024-03-15", Total: 10},
		{Date: "2024-03-08", Total: 20}, // exactly 7 days back
		{Date: "2024-03-07", Total: 40}, // outside
	}

	got := SalesInPeriod(sales, testNow, 7)
	if got != 30 {
		t.Errorf("Expected period total 30, got %.2f", got)
	}
}

func TestTrendPercent(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero previous", 123.45, 0, 0},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendPercent(tt.current, tt.previous); got != tt.want {
				t.Errorf("TrendPercent(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestMostUsedProvider(t *testing.T) {
	providers := []domain.Provider{
		{ID: "1", CompanyName: "ABC"},
		{ID: "2", CompanyName: "XYZ"},
	}
	orders := []domain.Order{
		{ProviderID: "2"},
		{ProviderID: "1"},
		{ProviderID: "2"},
	}

	p, ok := MostUsedProvider(orders, providers)
	if !ok {
		t.Fatal("Expected a provider")
	}
	if p.ID != "2" {
		t.Errorf("Expected provider 2, got %s", p.ID)
	}
}

func TestMostUsedProviderNoOrders(t *testing.T) {
	if _, ok := MostUsedProvider(nil, []domain.Provider{{ID: "1"}}); ok {
		t.Error("Expected no provider when there are no orders")
	}
}

func TestMostUsedProviderTieBreaksOnFirstEncountered(t *testing.T) {
	providers := []domain.Provider{{ID: "1"}, {ID: "2"}}
	orders := []domain.Order{
		{ProviderID: "2"},
		{ProviderID: "1"},
	}

	p, ok := MostUsedProvider(orders, providers)
	if !ok || p.ID != "2" {
		t.Errorf("Expected first-encountered provider 2 on tie, got %v", p.ID)
	}
}

func TestMostSoldProductRespectsWindow(t *testing.T) {
	products := []domain.Product{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	sales := []domain.Sale{
		{Date: "2024-03-14", Products: []domain.SaleLine{{ProductID: "1", Quantity: 3}}},
		{Date: "2024-03-13", Products: []domain.SaleLine{{ProductID: "1", Quantity: 2}}},
		// Heavy sale, but outside the 7-day window.
		{Date: "2024-02-01", Products: []domain.SaleLine{{ProductID: "2", Quantity: 100}}},
	}

	p, ok := MostSoldProduct(sales, products, testNow, 7)
	if !ok {
		t.Fatal("Expected a product")
	}
	if p.ID != "1" {
		t.Errorf("Expected product 1, got %s", p.ID)
	}
}

func TestDailySalesZeroFillsSevenDays(t *testing.T) {
	sales := []domain.Sale{
		{Date: "2024-03-15", Total: 10.50},
		{Date: "2024-03-15", Total: 4.50},
		{Date: "2024-03-12", Total: 99},
		{Date: "2024-03-01", Total: 1000}, // outside the series
	}

	series := DailySales(sales, testNow)

	if len(series) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(series))
	}
	if series[0].Date != "2024-03-09" || series[6].Date != "2024-03-15" {
		t.Errorf("Expected oldest-to-newest series, got %s..%s", series[0].Date, series[6].Date)
	}
	if series[6].Total != 15.00 {
		t.Errorf("Expected 15.00 on the last day, got %.2f", series[6].Total)
	}
	if series[3].Total != 99 {
		t.Errorf("Expected 99 on 2024-03-12, got %.2f", series[3].Total)
	}

	var zeros int
	for _, d := range series {
		if d.Total == 0 {
			zeros++
		}
	}
	if zeros != 5 {
		t.Errorf("Expected 5 zero-filled days, got %d", zeros)
	}
}

func TestProfitMarginFallsBackToPriceAndCoversInactive(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Price: 100, CostPrice: cost(60), Stock: 10, IsActive: true},
		// No cost price: cost falls back to the sale price, zero margin.
		{ID: "2", Price: 50, Stock: 4, IsActive: true},
		// Inactive products still count for the estimate.
		{ID: "3", Price: 10, CostPrice: cost(5), Stock: 2, IsActive: false},
	}

	revenue := 100.0*10 + 50*4 + 10*2
	costTotal := 60.0*10 + 50*4 + 5*2
	want := (revenue - costTotal) / revenue * 100

	if got := ProfitMargin(products); got != want {
		t.Errorf("Expected margin %.4f, got %.4f", want, got)
	}
}

func TestProfitMarginZeroRevenue(t *testing.T) {
	if got := ProfitMargin(nil); got != 0 {
		t.Errorf("Expected 0 margin on empty inventory, got %v", got)
	}
	if got := ProfitMargin([]domain.Product{{ID: "1", Price: 10, Stock: 0}}); got != 0 {
		t.Errorf("Expected 0 margin on zero revenue, got %v", got)
	}
}

func TestRecentActivityMergesAndTruncates(t *testing.T) {
	providers := []domain.Provider{{ID: "1", CompanyName: "ABC"}}
	sales := []domain.Sale{
		{Date: "2024-03-10", Total: 1, Products: []domain.SaleLine{{}}},
		{Date: "2024-03-12", Total: 2, Products: []domain.SaleLine{{}}},
		{Date: "2024-03-14", Total: 3, Products: []domain.SaleLine{{}}},
		{Date: "2024-03-15", Total: 4, Products: []domain.SaleLine{{}}},
	}
	orders := []domain.Order{
		{ProviderID: "1", ReceptionDate: "2024-03-13", Products: []domain.OrderLine{{}}},
		{ProviderID: "1", ReceptionDate: "2024-03-11", Products: []domain.OrderLine{{}}},
		{ProviderID: "missing", ReceptionDate: "2024-03-09", Products: []domain.OrderLine{{}}},
	}

	feed := RecentActivity(sales, orders, providers)

	if len(feed) != 5 {
		t.Fatalf("Expected feed of 5 entries, got %d", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i-1].Date < feed[i].Date {
			t.Errorf("Feed not sorted descending at %d: %s < %s", i, feed[i-1].Date, feed[i].Date)
		}
	}
	if feed[0].Date != "2024-03-15" || feed[0].Type != "sale" {
		t.Errorf("Expected newest sale first, got %+v", feed[0])
	}
}

func TestSummaryReflectsSnapshot(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Price: 25.99, CostPrice: cost(20), Stock: 15, MinStock: 5, IsActive: true},
		{ID: "2", Price: 12.50, CostPrice: cost(8), Stock: 2, MinStock: 3, IsActive: true},
	}
	sales := []domain.Sale{
		{Date: "2024-03-15", Total: 50.99, Products: []domain.SaleLine{{ProductID: "1", Quantity: 1}}},
	}

	e := newSnapshotEngine(t, products, nil, nil, sales)
	s := e.Summary(testNow)

	if s.TotalProducts != 2 {
		t.Errorf("Expected 2 active products, got %d", s.TotalProducts)
	}
	if s.SalesToday != 50.99 {
		t.Errorf("Expected sales today 50.99, got %.2f", s.SalesToday)
	}
	if len(s.LowStock) != 1 || s.LowStock[0].ID != "2" {
		t.Errorf("Expected product 2 in low stock, got %+v", s.LowStock)
	}
	if s.MostSoldProduct == nil || s.MostSoldProduct.ID != "1" {
		t.Errorf("Expected product 1 as best seller, got %+v", s.MostSoldProduct)
	}
	// One week of sales and none before: a zero previous period must
	// report a flat trend, not a division by zero.
	if s.WeekTrendPercent != 0 {
		t.Errorf("Expected 0 trend with empty previous period, got %v", s.WeekTrendPercent)
	}
	if len(s.DailySales) != 7 {
		t.Errorf("Expected 7-day series, got %d", len(s.DailySales))
	}
}
