package analytics

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// ProductTotal — суммарное количество одного товара по всем заказам.
type ProductTotal struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity float64 `json:"total_quantity"`
}

// ProductCustomerQuantity — количество одного товара у одного клиента.
type ProductCustomerQuantity struct {
	ProductName  string  `json:"product_name"`
	CustomerName string  `json:"customer_name"`
	ClientNumber string  `json:"client_number"`
	Quantity     float64 `json:"quantity"`
}

// CustomerGroup — заказы одного клиента, сгруппированные по номеру.
type CustomerGroup struct {
	ClientNumber string
	ClientName   string
	Orders       []domain.Order
}

// newCollator возвращает свежий португальский collator. Collator не
// потокобезопасен, поэтому каждый вызов агрегатора берёт свой.
func newCollator() *collate.Collator {
	return collate.New(language.Portuguese)
}

// TotalQuantityPerProduct суммирует количество по каждому товару.
// Целые индейки (domain.TurkeyProductNames) исключаются: у них свой
// отчёт. Результат отсортирован по имени товара по возрастанию.
func TotalQuantityPerProduct(orders []domain.Order) []ProductTotal {
	totals := make(map[string]float64)
	names := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			if domain.IsTurkeyProduct(item.ProductName) {
				continue
			}
			if _, seen := totals[item.ProductName]; !seen {
				names = append(names, item.ProductName)
			}
			totals[item.ProductName] += item.Quantity
		}
	}

	result := make([]ProductTotal, 0, len(names))
	for _, name := range names {
		result = append(result, ProductTotal{ProductName: name, TotalQuantity: totals[name]})
	}

	c := newCollator()
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].ProductName, result[j].ProductName) < 0
	})
	return result
}

// QuantityPerProductPerCustomer суммирует количество выбранного товара
// по клиентам. Ключ группировки — номер клиента; имя берётся из
// последнего встреченного заказа: при расхождении написаний имени под
// одним номером побеждает последнее (известный крайний случай,
// сохранён намеренно). Результат отсортирован по имени клиента.
func QuantityPerProductPerCustomer(orders []domain.Order, productName string) []ProductCustomerQuantity {
	type entry struct {
		name string
		qty  float64
	}
	byNumber := make(map[string]*entry)
	numbers := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			if item.ProductName != productName {
				continue
			}
			e, ok := byNumber[order.ClientNumber]
			if !ok {
				e = &entry{}
				byNumber[order.ClientNumber] = e
				numbers = append(numbers, order.ClientNumber)
			}
			e.name = order.ClientName
			e.qty += item.Quantity
		}
	}

	result := make([]ProductCustomerQuantity, 0, len(numbers))
	for _, number := range numbers {
		e := byNumber[number]
		result = append(result, ProductCustomerQuantity{
			ProductName:  productName,
			CustomerName: e.name,
			ClientNumber: number,
			Quantity:     e.qty,
		})
	}

	c := newCollator()
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].CustomerName, result[j].CustomerName) < 0
	})
	return result
}

// OrdersByCustomer разбивает заказы на группы по номеру клиента.
// Внутри группы сохраняется исходный относительный порядок заказов;
// сами группы отсортированы по номеру, чтобы результат не зависел от
// порядка обхода map.
func OrdersByCustomer(orders []domain.Order) []CustomerGroup {
	byNumber := make(map[string]int)
	groups := make([]CustomerGroup, 0)

	for _, order := range orders {
		idx, ok := byNumber[order.ClientNumber]
		if !ok {
			idx = len(groups)
			byNumber[order.ClientNumber] = idx
			groups = append(groups, CustomerGroup{
				ClientNumber: order.ClientNumber,
				ClientName:   order.ClientName,
			})
		}
		groups[idx].Orders = append(groups[idx].Orders, order)
	}

	c := newCollator()
	sort.SliceStable(groups, func(i, j int) bool {
		return c.CompareString(groups[i].ClientNumber, groups[j].ClientNumber) < 0
	})
	return groups
}

// TurkeysByCustomer собирает по одной строке на каждую позицию с
// целой индейкой, без суммирования. Сортировка: сначала имя товара,
// затем имя клиента.
func TurkeysByCustomer(orders []domain.Order) []ProductCustomerQuantity {
	rows := make([]ProductCustomerQuantity, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if !domain.IsTurkeyProduct(item.ProductName) {
				continue
			}
			rows = append(rows, ProductCustomerQuantity{
				ProductName:  item.ProductName,
				CustomerName: order.ClientName,
				ClientNumber: order.ClientNumber,
				Quantity:     item.Quantity,
			})
		}
	}

	c := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ProductName != rows[j].ProductName {
			return c.CompareString(rows[i].ProductName, rows[j].ProductName) < 0
		}
		return c.CompareString(rows[i].CustomerName, rows[j].CustomerName) < 0
	})
	return rows
}
