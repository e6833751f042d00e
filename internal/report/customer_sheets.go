package report

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
	"github.com/vladislavdragonenkov/encomendas/internal/domain"
)

// CustomerOrders строит лист заказов одного клиента: по секции на
// заказ с метаданными выдачи и таблицей позиций с итогом. Используется
// печатью карточки клиента.
func CustomerOrders(orders []domain.Order, customerName, clientNumber string, opts Options) (*Artifact, error) {
	now := opts.now()
	d := newDocument(now)
	d.pdf.SetFont("Helvetica", "", 18)
	d.pdf.Text(pageLeft, titleY, d.tr("Encomendas - "+customerName))
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.Text(pageLeft, stampY, d.tr("Número: "+clientNumber))
	d.pdf.Text(pageLeft, 37, d.tr("Gerado em: "+now.Format("02/01/2006, 15:04:05")))
	d.y = 45

	for i, order := range orders {
		d.ensureRoom()
		d.text(14, fmt.Sprintf("Encomenda %d - %s", i+1, order.ClientNumber))
		d.advance(8)

		d.text(10, "Data: "+createdAtLabel(order.CreatedAt))
		d.advance(6)
		d.text(10, "Local de Recolha: "+order.PickupLocation.Label())
		d.advance(6)
		if order.PickupTime != "" {
			d.text(10, "Hora: "+order.PickupTime)
			d.advance(6)
		}
		if order.Address != "" {
			d.text(10, "Morada: "+order.Address)
			d.advance(6)
		}
		d.advance(5)

		d.addTable(orderItemsTable(order, opts))
		d.advance(tableGap)
	}

	name := fmt.Sprintf("%s_%s-encomendas.pdf", sanitizeName(customerName), clientNumber)
	return d.artifact(opts.artifactNameOr(name))
}

// AllCustomerSheets строит «Todas as Fichas de Cliente»: клиенты по
// возрастанию номера, каждый со своей страницы; внутри клиента перенос
// случается только при нехватке места.
func AllCustomerSheets(orders []domain.Order, opts Options) (*Artifact, error) {
	now := opts.now()
	d := newDocument(now)
	d.titleBlock(withDateSuffix("Todas as Fichas de Cliente", opts.Date), now)
	d.y = 45

	groups := analytics.OrdersByCustomer(orders)
	for gi, group := range groups {
		// Каждый клиент начинается со свежей страницы, кроме первого.
		if gi > 0 {
			d.breakPage()
		} else {
			d.ensureRoom()
		}

		d.text(14, "Cliente: "+group.ClientName)
		d.advance(7)
		d.text(12, "Número: "+group.ClientNumber)
		d.advance(10)

		for oi, order := range group.Orders {
			d.ensureRoom()
			d.text(11, fmt.Sprintf("Encomenda %d", oi+1))
			d.advance(6)

			if order.PickupDate != nil {
				d.text(10, "Data de Recolha: "+order.PickupDate.Format("02/01/2006"))
				d.advance(6)
			}
			d.text(10, "Local de Recolha: "+order.PickupLocation.Label())
			d.advance(6)
			if order.PickupTime != "" {
				d.text(10, "Hora: "+order.PickupTime)
				d.advance(6)
			}
			if order.Address != "" {
				d.text(10, "Morada: "+order.Address)
				d.advance(6)
			}
			d.advance(5)

			d.addTable(orderItemsTable(order, opts))
			d.advance(tableGap)
		}
	}

	return d.artifact(opts.artifactName("todas-fichas-cliente"))
}

// orderItemsTable — таблица позиций заказа с жирной итоговой строкой.
func orderItemsTable(order domain.Order, opts Options) table {
	rows := make([][]string, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, []string{
			item.ProductName,
			opts.Units.Format(item.ProductName, item.Quantity),
			fmt.Sprintf("€%.2f", item.ItemPrice),
			fmt.Sprintf("€%.2f", item.Total()),
		})
	}
	return table{
		columns:  []tableColumn{{"Produto", 80}, {"Quantidade", 38}, {"Preço Unit.", 32}, {"Total", 32}},
		rows:     rows,
		footer:   []string{"", "", "Total:", fmt.Sprintf("€%.2f", order.Total())},
		fontSize: 9,
	}
}

func createdAtLabel(createdAt time.Time) string {
	if createdAt.IsZero() {
		return "N/A"
	}
	return createdAt.Format("02/01/2006")
}
