// Package export связывает источники данных, агрегаты и построители
// PDF в один вызов: запрос вида «такой-то отчёт за такой-то день» —
// готовый артефакт.
package export

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
	"github.com/vladislavdragonenkov/encomendas/internal/domain"
	"github.com/vladislavdragonenkov/encomendas/internal/report"
	"github.com/vladislavdragonenkov/encomendas/internal/units"
)

// Kind — вид отчёта, запрошенный вызывающим.
type Kind string

const (
	// KindTotalPerProduct — «Quantidade Total por Produto».
	KindTotalPerProduct Kind = "quantidade-total"
	// KindAllProductsQuantities — «Todos os Produtos e Quantidades».
	KindAllProductsQuantities Kind = "produtos-quantidades"
	// KindProductCustomers — «Quantidade por Cliente» по одному товару.
	KindProductCustomers Kind = "produto-clientes"
	// KindAllCustomerSheets — «Todas as Fichas de Cliente».
	KindAllCustomerSheets Kind = "fichas-cliente"
	// KindAllProductsWithCustomers — «Produtos e Clientes».
	KindAllProductsWithCustomers Kind = "produtos-e-clientes"
	// KindTurkeys — «Perus (Recheado e Sem Recheio)».
	KindTurkeys Kind = "perus"
	// KindCustomerOrders — лист заказов одного клиента.
	KindCustomerOrders Kind = "cliente"
)

// Request описывает один запрос на построение отчёта.
type Request struct {
	Kind Kind
	Date analytics.DateSelector
	// ProductName обязателен для KindProductCustomers.
	ProductName string
	// ClientNumber обязателен для KindCustomerOrders.
	ClientNumber string
	// Filename переопределяет имя артефакта по умолчанию.
	Filename string
	// Clock подменяет источник времени (для воспроизводимых тестов).
	Clock func() time.Time
}

// Service загружает данные и строит отчёты. Каждый вызов Build
// самодостаточен: никакого состояния между запросами не остаётся,
// поэтому сервис безопасно дёргать из параллельных задач.
type Service struct {
	orders   domain.OrderSource
	products domain.ProductSource
	logger   log.FieldLogger
}

// NewService создаёт сервис экспорта. products может быть nil: тогда
// все количества форматируются как штучные.
func NewService(orders domain.OrderSource, products domain.ProductSource, logger log.FieldLogger) *Service {
	return &Service{orders: orders, products: products, logger: logger}
}

// Build загружает коллекции, применяет фильтр по дате и строит
// запрошенный отчёт.
func (s *Service) Build(ctx context.Context, req Request) (*report.Artifact, error) {
	orders, err := s.orders.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	var products []domain.Product
	if s.products != nil {
		products, err = s.products.LoadProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
	}

	filtered := analytics.FilterByDate(orders, req.Date)
	opts := report.Options{
		Date:     req.Date,
		Filename: req.Filename,
		Units:    units.BuildLookup(products),
		Clock:    req.Clock,
	}

	var artifact *report.Artifact
	switch req.Kind {
	case KindTotalPerProduct:
		artifact, err = report.TotalPerProduct(analytics.TotalQuantityPerProduct(filtered), opts)
	case KindAllProductsQuantities:
		artifact, err = report.AllProductsQuantities(analytics.TotalQuantityPerProduct(filtered), opts)
	case KindProductCustomers:
		if req.ProductName == "" {
			return nil, domain.ErrProductNameRequired
		}
		data := analytics.QuantityPerProductPerCustomer(filtered, req.ProductName)
		artifact, err = report.ProductCustomers(data, req.ProductName, opts)
	case KindAllCustomerSheets:
		artifact, err = report.AllCustomerSheets(filtered, opts)
	case KindAllProductsWithCustomers:
		artifact, err = report.AllProductsWithCustomers(filtered, opts)
	case KindTurkeys:
		artifact, err = report.Turkeys(analytics.TurkeysByCustomer(filtered), opts)
	case KindCustomerOrders:
		if req.ClientNumber == "" {
			return nil, domain.ErrClientNumberRequired
		}
		// Карточка клиента печатается по всем его заказам, фильтр по
		// дате к ней не применяется.
		group, ok := findCustomer(analytics.OrdersByCustomer(orders), req.ClientNumber)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, req.ClientNumber)
		}
		artifact, err = report.CustomerOrders(group.Orders, group.ClientName, group.ClientNumber, opts)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReportKind, req.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s report: %w", req.Kind, err)
	}

	s.logger.WithFields(log.Fields{
		"kind":     req.Kind,
		"date":     req.Date,
		"artifact": artifact.Name,
		"bytes":    len(artifact.Bytes()),
	}).Info("отчёт сформирован")

	return artifact, nil
}

func findCustomer(groups []analytics.CustomerGroup, clientNumber string) (analytics.CustomerGroup, bool) {
	for _, group := range groups {
		if group.ClientNumber == clientNumber {
			return group, true
		}
	}
	return analytics.CustomerGroup{}, false
}
