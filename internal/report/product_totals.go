package report

import (
	"fmt"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
)

// TotalPerProduct строит отчёт «Quantidade Total por Produto»: одна
// таблица товар → суммарное количество (без целых индеек — у них свой
// отчёт).
func TotalPerProduct(data []analytics.ProductTotal, opts Options) (*Artifact, error) {
	return productTotals("Quantidade Total por Produto", "quantidade-total-por-produto", data, opts)
}

// AllProductsQuantities — та же таблица под заголовком
// «Todos os Produtos e Quantidades»; экспорт со страницы списка
// заказов.
func AllProductsQuantities(data []analytics.ProductTotal, opts Options) (*Artifact, error) {
	return productTotals("Todos os Produtos e Quantidades", "todos-produtos-quantidades", data, opts)
}

func productTotals(title, kind string, data []analytics.ProductTotal, opts Options) (*Artifact, error) {
	now := opts.now()
	d := newDocument(now)
	d.titleBlock(withDateSuffix(title, opts.Date), now)
	d.y = 35

	rows := make([][]string, 0, len(data))
	for _, item := range data {
		rows = append(rows, []string{
			item.ProductName,
			opts.Units.Format(item.ProductName, item.TotalQuantity),
		})
	}
	d.addTable(table{
		columns:  []tableColumn{{"Produto", 120}, {"Quantidade Total", 62}},
		rows:     rows,
		fontSize: 10,
	})

	return d.artifact(opts.artifactName(kind))
}

// ProductCustomers строит отчёт «Quantidade por Cliente» по одному
// выбранному товару: клиент, номер и количество в единицах этого
// товара.
func ProductCustomers(data []analytics.ProductCustomerQuantity, productName string, opts Options) (*Artifact, error) {
	title := "Quantidade por Cliente - " + productName
	if opts.Date.Qualifies() {
		title += fmt.Sprintf(" (%s de Dezembro)", opts.Date)
	}

	now := opts.now()
	d := newDocument(now)
	d.titleBlock(title, now)
	d.y = 35

	rows := make([][]string, 0, len(data))
	for _, item := range data {
		rows = append(rows, []string{
			item.CustomerName,
			item.ClientNumber,
			opts.Units.Format(productName, item.Quantity),
		})
	}
	d.addTable(table{
		columns:  []tableColumn{{"Cliente", 90}, {"Número", 40}, {"Quantidade", 52}},
		rows:     rows,
		fontSize: 10,
	})

	return d.artifact(opts.artifactName(sanitizeName(productName) + "-por-cliente"))
}
