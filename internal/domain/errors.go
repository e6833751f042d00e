package domain

import "errors"

var (
	// ErrUnknownReportKind — запрошен несуществующий вид отчёта.
	ErrUnknownReportKind = errors.New("unknown report kind")
	// ErrProductNameRequired — для отчёта по товару не указано имя товара.
	ErrProductNameRequired = errors.New("product name is required")
	// ErrClientNumberRequired — для отчёта по клиенту не указан номер клиента.
	ErrClientNumberRequired = errors.New("client number is required")
	// ErrCustomerNotFound — в загруженной коллекции нет заказов с таким номером клиента.
	ErrCustomerNotFound = errors.New("customer not found")
)
