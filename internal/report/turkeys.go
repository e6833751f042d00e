package report

import (
	"fmt"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
	"github.com/vladislavdragonenkov/encomendas/internal/domain"
	"github.com/vladislavdragonenkov/encomendas/internal/units"
)

// Turkeys строит отчёт «Perus (Recheado e Sem Recheio)»: плоская
// таблица по позициям с целыми индейками и сводка с весом и числом
// штук по каждому имени и общим итогом. Вес всегда в килограммах.
func Turkeys(data []analytics.ProductCustomerQuantity, opts Options) (*Artifact, error) {
	now := opts.now()
	d := newDocument(now)
	d.titleBlock(withDateSuffix("Perus (Recheado e Sem Recheio)", opts.Date), now)
	d.y = 35

	rows := make([][]string, 0, len(data))
	for _, item := range data {
		rows = append(rows, []string{
			item.ProductName,
			item.CustomerName,
			item.ClientNumber,
			units.Kilograms(item.Quantity),
		})
	}
	d.addTable(table{
		columns:  []tableColumn{{"Produto", 60}, {"Cliente", 62}, {"Número", 30}, {"Peso (kg)", 30}},
		rows:     rows,
		fontSize: 10,
	})
	d.advance(10)
	d.ensureRoom()

	weights := make(map[string]float64)
	counts := make(map[string]int)
	for _, item := range data {
		weights[item.ProductName] += item.Quantity
		counts[item.ProductName]++
	}

	d.text(12, "Totais:")
	d.advance(7)

	var grandWeight float64
	var grandCount int
	for _, name := range domain.TurkeyProductNames {
		grandWeight += weights[name]
		grandCount += counts[name]
		d.text(10, fmt.Sprintf("%s: %s (%s)", name, units.Kilograms(weights[name]), unitsLabel(counts[name])))
		d.advance(6)
	}
	d.text(11, fmt.Sprintf("Total Geral: %s (%s)", units.Kilograms(grandWeight), unitsLabel(grandCount)))

	return d.artifact(opts.artifactName("perus"))
}

// unitsLabel склоняет «unidade» по числу штук.
func unitsLabel(count int) string {
	if count == 1 {
		return "1 unidade"
	}
	return fmt.Sprintf("%d unidades", count)
}
