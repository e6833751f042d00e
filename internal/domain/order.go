package domain

import "time"

// PickupLocation — точка выдачи рождественского заказа.
type PickupLocation string

const (
	// PickupAmoreira — магазин в Аморейре.
	PickupAmoreira PickupLocation = "amoreira"
	// PickupLisboa — магазин в Лиссабоне.
	PickupLisboa PickupLocation = "lisboa"
	// PickupCasa — доставка на дом; для неё обязателен адрес.
	PickupCasa PickupLocation = "casa"
	// PickupCascais — магазин в Кашкайше.
	PickupCascais PickupLocation = "cascais"
)

// Label возвращает отображаемое имя точки выдачи.
// Неизвестные значения возвращаются как есть, чтобы отчёт не падал на новых точках.
func (p PickupLocation) Label() string {
	switch p {
	case PickupAmoreira:
		return "Amoreira"
	case PickupLisboa:
		return "Lisboa"
	case PickupCasa:
		return "Casa"
	case PickupCascais:
		return "Cascais"
	}
	return string(p)
}

// UnitType описывает семантику количества товара и правила его форматирования.
type UnitType string

const (
	// UnitTypeUnit — штучный товар, количество целое.
	UnitTypeUnit UnitType = "unit"
	// UnitTypeKg — весовой товар, количество в килограммах.
	UnitTypeKg UnitType = "kg"
	// UnitTypeLiters — жидкий товар, количество в литрах.
	UnitTypeLiters UnitType = "liters"
)

// Product — справочная позиция каталога. Во всей агрегации и отчётах
// связь с позициями заказа идёт по имени, а не по id: два товара с
// одинаковым именем неразличимы ниже по потоку. Это известное
// ограничение модели данных, и мы его сознательно сохраняем.
type Product struct {
	ID       string
	Name     string
	Price    float64
	UnitType UnitType
}

// LineItem — одна позиция заказа. ItemPrice — снимок цены на момент
// оформления, не зависящий от текущей цены каталога.
type LineItem struct {
	ProductName string
	Quantity    float64
	ItemPrice   float64
}

// Total возвращает сумму позиции: количество на цену.
func (li LineItem) Total() float64 {
	return li.Quantity * li.ItemPrice
}

// Order — заказ клиента с метаданными выдачи и позициями.
// Инвариант "PickupCasa ⇒ Address задан" обеспечивается формой ввода;
// ядро отчётов обязано переживать его отсутствие (пустая строка).
type Order struct {
	ID             string
	ClientName     string
	ClientNumber   string
	PhoneNumber    string
	PickupLocation PickupLocation
	// PickupDate — календарная дата выдачи без таймзонной семантики;
	// nil, если дата не выбрана.
	PickupDate *time.Time
	PickupTime string
	Address    string
	CreatedAt  time.Time
	Items      []LineItem
}

// Total возвращает сумму заказа по всем позициям.
func (o Order) Total() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Total()
	}
	return sum
}

// TurkeyProductNames — два зарезервированных имени целых индеек.
// Список общий для агрегатора (исключение из общих итогов и отдельная
// выборка) и рендера (подписи в сводке), чтобы копии не разъехались.
var TurkeyProductNames = []string{"PERU RECHEADO", "PERU SEM RECHEIO"}

// IsTurkeyProduct сообщает, относится ли имя товара к целым индейкам.
func IsTurkeyProduct(name string) bool {
	for _, turkey := range TurkeyProductNames {
		if name == turkey {
			return true
		}
	}
	return false
}
