// Package units форматирует количества товаров для отображения:
// штуки без дробной части, килограммы и литры с точностью до трёх
// знаков и обрезкой хвостовых нулей. Все места, где количество
// показывается пользователю, обязаны проходить через этот пакет.
package units

import (
	"strconv"
	"strings"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// Lookup — таблица имя товара → единица измерения. Нулевая таблица
// допустима: любой товар тогда считается штучным.
type Lookup map[string]domain.UnitType

// BuildLookup строит таблицу единиц по справочнику товаров.
// При дубликатах имён побеждает последняя запись (known limitation
// исходной модели, сохраняем как есть).
func BuildLookup(products []domain.Product) Lookup {
	lookup := make(Lookup, len(products))
	for _, p := range products {
		lookup[p.Name] = p.UnitType
	}
	return lookup
}

// Format возвращает отображаемую строку количества для товара.
// Неизвестное имя не считается ошибкой: такой товар штучный.
func (l Lookup) Format(productName string, quantity float64) string {
	switch l[productName] {
	case domain.UnitTypeKg:
		return trimFixed(quantity) + " kg"
	case domain.UnitTypeLiters:
		return trimFixed(quantity) + " L"
	}
	return strconv.FormatFloat(quantity, 'f', -1, 64) + " un"
}

// Kilograms форматирует вес в килограммах независимо от справочника.
// Используется в отчёте по индейкам, где единица известна заранее.
func Kilograms(quantity float64) string {
	return trimFixed(quantity) + " kg"
}

// trimFixed печатает ровно три дробных знака и срезает хвостовые нули
// вместе с точкой: 2.500 → 2.5, 3.000 → 3, 0.001 → 0.001.
func trimFixed(quantity float64) string {
	s := strconv.FormatFloat(quantity, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
