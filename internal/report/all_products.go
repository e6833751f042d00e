package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// AllProductsWithCustomers строит «Produtos e Clientes»: по секции на
// каждый товар (в алфавитном порядке) с таблицей клиентов и итоговым
// количеством. Секции разделяются горизонтальной линией, если перенос
// страницы не сделал разделение сам.
func AllProductsWithCustomers(orders []domain.Order, opts Options) (*Artifact, error) {
	type customerQty struct {
		name   string
		number string
		qty    float64
	}

	// Накопление в порядке появления, сортировка — отдельным явным
	// шагом: порядок обхода map никогда не доходит до пользователя.
	perProduct := make(map[string]map[string]*customerQty)
	productNames := make([]string, 0)
	numberOrder := make(map[string][]string)

	for _, order := range orders {
		for _, item := range order.Items {
			customers, ok := perProduct[item.ProductName]
			if !ok {
				customers = make(map[string]*customerQty)
				perProduct[item.ProductName] = customers
				productNames = append(productNames, item.ProductName)
			}
			entry, ok := customers[order.ClientNumber]
			if !ok {
				entry = &customerQty{name: order.ClientName, number: order.ClientNumber}
				customers[order.ClientNumber] = entry
				numberOrder[item.ProductName] = append(numberOrder[item.ProductName], order.ClientNumber)
			}
			entry.qty += item.Quantity
		}
	}

	c := collate.New(language.Portuguese)
	sort.SliceStable(productNames, func(i, j int) bool {
		return c.CompareString(productNames[i], productNames[j]) < 0
	})

	now := opts.now()
	d := newDocument(now)
	d.titleBlock(withDateSuffix("Produtos e Clientes", opts.Date), now)
	d.y = 45

	for pi, productName := range productNames {
		d.ensureRoom()
		d.text(14, productName)
		d.advance(8)

		customers := make([]*customerQty, 0, len(numberOrder[productName]))
		for _, number := range numberOrder[productName] {
			customers = append(customers, perProduct[productName][number])
		}
		sort.SliceStable(customers, func(i, j int) bool {
			return c.CompareString(customers[i].name, customers[j].name) < 0
		})

		var total float64
		rows := make([][]string, 0, len(customers))
		for _, customer := range customers {
			total += customer.qty
			rows = append(rows, []string{
				customer.name,
				customer.number,
				opts.Units.Format(productName, customer.qty),
			})
		}

		d.addTable(table{
			columns:  []tableColumn{{"Cliente", 90}, {"Número", 40}, {"Quantidade", 52}},
			rows:     rows,
			footer:   []string{"", "Total:", opts.Units.Format(productName, total)},
			fontSize: 9,
		})
		d.advance(tableGap)

		if pi < len(productNames)-1 {
			d.advance(5)
			// Линию рисуем только когда секция не уехала на новую
			// страницу: перенос сам по себе разделяет товары.
			if !d.ensureRoom() {
				d.separator()
				d.advance(10)
			}
		}
	}

	return d.artifact(opts.artifactName("produtos-e-clientes"))
}
