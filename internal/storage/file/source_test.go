package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
	"github.com/vladislavdragonenkov/encomendas/internal/storage/file"
)

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func TestLoadOrders(t *testing.T) {
	path := writeSnapshot(t, "orders.json", `[
		{
			"id": "o1",
			"client_name": "Maria Silva",
			"client_number": "003",
			"pickup_location": "amoreira",
			"pickup_date": "2025-12-24",
			"pickup_time": "10:30",
			"created_at": "2025-12-01T15:00:00Z",
			"products": [
				{"product_name": "BACALHAU", "quantity": 2.5, "item_price": 18}
			]
		},
		{
			"client_name": "Ana Costa",
			"client_number": "001",
			"pickup_location": "casa",
			"address": "Rua das Flores 12",
			"products": []
		}
	]`)

	orders, err := file.NewSource(path, "").LoadOrders(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	first := orders[0]
	if first.ID != "o1" || first.ClientNumber != "003" {
		t.Fatalf("unexpected first order: %+v", first)
	}
	if first.PickupDate == nil || first.PickupDate.Day() != 24 || first.PickupDate.Month() != time.December {
		t.Fatalf("pickup date not parsed: %+v", first.PickupDate)
	}
	if len(first.Items) != 1 || first.Items[0].ProductName != "BACALHAU" {
		t.Fatalf("items not parsed: %+v", first.Items)
	}

	second := orders[1]
	if second.ID == "" {
		t.Fatal("missing id must be filled in")
	}
	if second.PickupDate != nil {
		t.Fatalf("absent pickup date must stay nil, got %v", second.PickupDate)
	}
	if second.PickupLocation != domain.PickupCasa || second.Address == "" {
		t.Fatalf("unexpected second order: %+v", second)
	}
}

func TestLoadOrdersBadDate(t *testing.T) {
	path := writeSnapshot(t, "orders.json", `[{"client_number": "001", "pickup_date": "24/12/2025"}]`)
	if _, err := file.NewSource(path, "").LoadOrders(context.Background()); err == nil {
		t.Fatal("expected an error for an unsupported date format")
	}
}

func TestLoadProducts(t *testing.T) {
	path := writeSnapshot(t, "products.json", `[
		{"id": "p1", "name": "BACALHAU", "price": 18, "unit_type": "kg"},
		{"id": "p2", "name": "BOLO REI", "price": 12, "unit_type": "unit"}
	]`)

	products, err := file.NewSource("", path).LoadProducts(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].UnitType != domain.UnitTypeKg {
		t.Fatalf("unit type not mapped: %+v", products[0])
	}
}

func TestLoadProductsWithoutPath(t *testing.T) {
	products, err := file.NewSource("orders.json", "").LoadProducts(context.Background())
	if err != nil {
		t.Fatalf("empty products path must not fail: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %+v", products)
	}
}
