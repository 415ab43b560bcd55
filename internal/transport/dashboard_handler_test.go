package transport

import (
	"encoding/json"
	"net/http"
	"testing"

	"shopstock/internal/metrics"
)

func TestDashboardReflectsMutationsImmediately(t *testing.T) {
	api := newTestAPI(t)
	employee := api.employeeToken(t)

	w := api.request(t, "GET", "/api/dashboard", employee, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var before metrics.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &before); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}
	if before.TotalProducts != 3 {
		t.Errorf("Expected 3 active products, got %d", before.TotalProducts)
	}
	if len(before.DailySales) != 7 {
		t.Errorf("Expected 7-day series, got %d", len(before.DailySales))
	}

	// Register a sale, then re-read: nothing is cached, so the totals
	// must move on the very next request.
	w = api.request(t, "POST", "/api/sales", employee, map[string]interface{}{
		"products": []map[string]interface{}{
			{"productId": "2", "quantity": 2},
		},
		"paymentMethod": "Cash",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Sale failed: %d %s", w.Code, w.Body.String())
	}

	w = api.request(t, "GET", "/api/dashboard", employee, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var after metrics.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}

	if after.SalesToday != before.SalesToday+25.00 {
		t.Errorf("Expected sales today to grow by 25.00: before %.2f, after %.2f", before.SalesToday, after.SalesToday)
	}
	// Two units of product 2 left the shelf at 12.50 each.
	if diff := before.InventoryValue - after.InventoryValue; diff != 25.00 {
		t.Errorf("Expected inventory value to drop by 25.00, dropped by %.2f", diff)
	}
}
