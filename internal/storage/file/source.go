// Package file — источник заказов и товаров из JSON-снимков. Нужен для
// офлайн-прогонов отчётов: выгрузил таблицы один раз — дальше можно
// собирать документы без доступа к базе.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// Source читает снимки orders.json / products.json.
type Source struct {
	ordersPath   string
	productsPath string
}

// NewSource создаёт файловый источник. Пустой путь к товарам допустим:
// тогда справочник пуст и всё форматируется как штучный товар.
func NewSource(ordersPath, productsPath string) *Source {
	return &Source{ordersPath: ordersPath, productsPath: productsPath}
}

type lineItemDTO struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	ItemPrice   float64 `json:"item_price"`
}

type orderDTO struct {
	ID             string        `json:"id"`
	ClientName     string        `json:"client_name"`
	ClientNumber   string        `json:"client_number"`
	PhoneNumber    string        `json:"phone_number"`
	PickupLocation string        `json:"pickup_location"`
	PickupDate     string        `json:"pickup_date"`
	PickupTime     string        `json:"pickup_time"`
	Address        string        `json:"address"`
	CreatedAt      string        `json:"created_at"`
	Products       []lineItemDTO `json:"products"`
}

type productDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	UnitType string  `json:"unit_type"`
}

// LoadOrders читает и разворачивает снимок заказов. Заказам без id
// выдаётся новый uuid: дальше по потоку id участвует только в
// группировке позиций и обязан быть непустым.
func (s *Source) LoadOrders(_ context.Context) ([]domain.Order, error) {
	raw, err := os.ReadFile(s.ordersPath)
	if err != nil {
		return nil, fmt.Errorf("read orders snapshot: %w", err)
	}
	var dtos []orderDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("decode orders snapshot: %w", err)
	}

	orders := make([]domain.Order, 0, len(dtos))
	for i, dto := range dtos {
		order := domain.Order{
			ID:             dto.ID,
			ClientName:     dto.ClientName,
			ClientNumber:   dto.ClientNumber,
			PhoneNumber:    dto.PhoneNumber,
			PickupLocation: domain.PickupLocation(dto.PickupLocation),
			PickupTime:     dto.PickupTime,
			Address:        dto.Address,
		}
		if order.ID == "" {
			order.ID = uuid.NewString()
		}
		if dto.PickupDate != "" {
			parsed, err := parseDate(dto.PickupDate)
			if err != nil {
				return nil, fmt.Errorf("order %d: pickup_date: %w", i, err)
			}
			order.PickupDate = &parsed
		}
		if dto.CreatedAt != "" {
			parsed, err := parseDate(dto.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("order %d: created_at: %w", i, err)
			}
			order.CreatedAt = parsed
		}
		for _, item := range dto.Products {
			order.Items = append(order.Items, domain.LineItem{
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				ItemPrice:   item.ItemPrice,
			})
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// LoadProducts читает снимок справочника товаров.
func (s *Source) LoadProducts(_ context.Context) ([]domain.Product, error) {
	if s.productsPath == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(s.productsPath)
	if err != nil {
		return nil, fmt.Errorf("read products snapshot: %w", err)
	}
	var dtos []productDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("decode products snapshot: %w", err)
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, domain.Product{
			ID:       dto.ID,
			Name:     dto.Name,
			Price:    dto.Price,
			UnitType: domain.UnitType(dto.UnitType),
		})
	}
	return products, nil
}

// parseDate принимает календарную дату и полную метку времени:
// выгрузки хранят pickup_date как YYYY-MM-DD, а created_at — в RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date %q", s)
	}
	return t, nil
}

var (
	_ domain.OrderSource   = (*Source)(nil)
	_ domain.ProductSource = (*Source)(nil)
)
