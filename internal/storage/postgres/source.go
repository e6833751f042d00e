package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// Source реализует domain.OrderSource и domain.ProductSource поверх
// подключения Store.
type Source struct {
	db *sql.DB
}

// NewSource создаёт источник заказов и товаров поверх Store.
func NewSource(store *Store) *Source {
	return &Source{db: store.DB()}
}

// LoadOrders загружает все заказы вместе с позициями. Позиции
// подтягиваются одним запросом и раскладываются по заказам в памяти,
// чтобы не делать по запросу на заказ.
func (s *Source) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, client_number, phone_number, pickup_location,
		       pickup_date, pickup_time, address, created_at
		FROM orders
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			order      domain.Order
			location   string
			phone      sql.NullString
			pickupDate sql.NullTime
			pickupTime sql.NullString
			address    sql.NullString
		)
		if err := rows.Scan(
			&order.ID, &order.ClientName, &order.ClientNumber, &phone,
			&location, &pickupDate, &pickupTime, &address, &order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.PickupLocation = domain.PickupLocation(location)
		order.PhoneNumber = phone.String
		order.PickupTime = pickupTime.String
		order.Address = address.String
		if pickupDate.Valid {
			d := pickupDate.Time
			order.PickupDate = &d
		}
		index[order.ID] = len(orders)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	if err := s.loadItems(ctx, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Source) loadItems(ctx context.Context, orders []domain.Order, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT order_id, product_name, quantity, item_price
		FROM order_products
		ORDER BY order_id, id
	`)
	if err != nil {
		return fmt.Errorf("select order products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			item    domain.LineItem
		)
		if err := rows.Scan(&orderID, &item.ProductName, &item.Quantity, &item.ItemPrice); err != nil {
			return fmt.Errorf("scan order product: %w", err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate order products: %w", err)
	}
	return nil
}

// LoadProducts загружает справочник товаров для таблицы единиц.
func (s *Source) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, unit_type
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var (
			p        domain.Product
			unitType string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &unitType); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.UnitType = domain.UnitType(unitType)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

var (
	_ domain.OrderSource   = (*Source)(nil)
	_ domain.ProductSource = (*Source)(nil)
)
