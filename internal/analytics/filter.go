// Package analytics содержит чистые преобразования коллекции заказов:
// фильтр по дате выдачи и четыре агрегата для отчётов. Функции не
// мутируют вход и не держат состояния; порядок строк на выходе всегда
// задаётся явной сортировкой (португальская локаль), а не порядком
// обхода map.
package analytics

import (
	"strconv"
	"time"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// DateSelector — выбор дня выдачи для фильтрации отчётов.
type DateSelector string

const (
	// DateAll — без фильтрации по дате.
	DateAll DateSelector = "all"
	// Date23 — выдача 23 декабря.
	Date23 DateSelector = "23"
	// Date24 — выдача 24 декабря.
	Date24 DateSelector = "24"
)

// Qualifies сообщает, должен ли селектор попадать в заголовки и имена
// файлов (все селекторы, кроме DateAll).
func (d DateSelector) Qualifies() bool {
	return d != "" && d != DateAll
}

// FilterByDate оставляет заказы, чья дата выдачи приходится на
// выбранный день декабря. Заказы без даты в дневные выборки не
// попадают. Год сознательно не проверяется: инструмент живёт один
// сезон (known limitation, не чиним).
func FilterByDate(orders []domain.Order, selector DateSelector) []domain.Order {
	if !selector.Qualifies() {
		return orders
	}

	day, err := strconv.Atoi(string(selector))
	if err != nil {
		// Нечисловой селектор не совпадает ни с одной датой.
		return []domain.Order{}
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.PickupDate == nil {
			continue
		}
		if order.PickupDate.Day() == day && order.PickupDate.Month() == time.December {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
