// Package memory — источник заказов и товаров из памяти для тестов и
// локальной разработки.
package memory

import (
	"context"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// Source отдаёт заранее заданные коллекции. Наружу всегда уходят
// копии срезов, чтобы вызывающий не мутировал общие данные.
type Source struct {
	orders   []domain.Order
	products []domain.Product
}

// NewSource создаёт источник с фиксированными данными.
func NewSource(orders []domain.Order, products []domain.Product) *Source {
	return &Source{orders: orders, products: products}
}

// LoadOrders возвращает копию коллекции заказов.
func (s *Source) LoadOrders(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// LoadProducts возвращает копию справочника товаров.
func (s *Source) LoadProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

var (
	_ domain.OrderSource   = (*Source)(nil)
	_ domain.ProductSource = (*Source)(nil)
)
