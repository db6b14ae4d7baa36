package services_test

import (
	"testing"

	"github.com/JashanBansal182304/MessMate/models"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/store"
)

func TestStockStatusThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		quantity float64
		min      float64
		want     string
	}{
		{quantity: 5, min: 10, want: models.StockStatusLow},
		{quantity: 10, min: 10, want: models.StockStatusLow},
		{quantity: 15, min: 10, want: models.StockStatusMedium},
		{quantity: 20, min: 10, want: models.StockStatusMedium},
		{quantity: 21, min: 10, want: models.StockStatusGood},
	}
	for _, tc := range cases {
		item := models.InventoryItem{Quantity: tc.quantity, MinStock: tc.min}
		if got := item.StockStatus(); got != tc.want {
			t.Errorf("qty=%.0f min=%.0f: got %q, want %q", tc.quantity, tc.min, got, tc.want)
		}
	}
}

func TestInventoryAddListAndLowStock(t *testing.T) {
	t.Parallel()
	svc := services.NewInventoryService(store.NewMemStore())

	items := []models.InventoryItem{
		{Name: "Rice", Category: "grains", Quantity: 50, Unit: "kg", MinStock: 10},
		{Name: "Salt", Category: "spices", Quantity: 1, Unit: "kg", MinStock: 1},
	}
	for _, it := range items {
		if _, err := svc.Add(it); err != nil {
			t.Fatalf("add %s: %v", it.Name, err)
		}
	}

	all, err := svc.List("", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 items, got %d", len(all))
	}

	grains, err := svc.List("grains", "")
	if err != nil {
		t.Fatalf("list grains: %v", err)
	}
	if len(grains) != 1 || grains[0].Name != "Rice" {
		t.Fatalf("unexpected category filter result: %+v", grains)
	}

	low, err := svc.LowStock()
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Salt" {
		t.Fatalf("unexpected low stock result: %+v", low)
	}
}

func TestInventoryUpdateUnknownIDFails(t *testing.T) {
	t.Parallel()
	svc := services.NewInventoryService(store.NewMemStore())

	_, err := svc.Update(models.InventoryItem{
		ID: "missing", Name: "Oil", Quantity: 5, MinStock: 2,
	})
	if err == nil {
		t.Fatal("expected update of unknown item to fail")
	}
}
