package domain

import "context"

// OrderSource отдаёт уже собранные заказы (вместе с позициями) из
// внешнего хранилища. Ядро отчётов не мутирует полученные данные.
type OrderSource interface {
	LoadOrders(ctx context.Context) ([]Order, error)
}

// ProductSource отдаёт справочник товаров; он нужен только для
// построения таблицы имя → единица измерения. Отсутствие справочника
// не фатально: форматирование откатывается к штучным единицам.
type ProductSource interface {
	LoadProducts(ctx context.Context) ([]Product, error)
}
