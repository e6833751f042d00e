// Package report строит печатные PDF-документы по агрегатам заказов:
// постраничные отчёты с заголовком, таблицами, итогами и переносами
// страниц. Геометрия (A4, миллиметры, поля и пороги) повторяет
// исходные печатные формы магазина.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
	"github.com/vladislavdragonenkov/encomendas/internal/units"
)

const (
	// Левое поле и правая граница контента, мм.
	pageLeft  = 14.0
	pageRight = 196.0
	// Верх страницы после переноса.
	pageTop = 20.0
	// Порог низа: блок, начинающийся ниже, уезжает на новую страницу.
	maxY = 250.0

	titleY = 22.0
	stampY = 30.0

	// Отступ после таблицы и запасной сдвиг, если таблица не рисовалась.
	tableGap        = 15.0
	fallbackAdvance = 50.0

	headRowHeight = 8.0
	bodyRowHeight = 7.0
)

// Options — общие параметры построения отчёта.
type Options struct {
	// Date попадает в заголовок и имя файла, когда выбран конкретный день.
	Date analytics.DateSelector
	// Filename переопределяет имя артефакта по умолчанию.
	Filename string
	// Units — таблица единиц измерения; nil допустим (всё штучное).
	Units units.Lookup
	// Clock подменяет источник времени для штампа «Gerado em»;
	// nil — time.Now. Тестам нужен воспроизводимый вывод.
	Clock func() time.Time
}

func (o Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

// artifactName возвращает переопределённое либо дефолтное имя файла
// с датным суффиксом, когда выбран конкретный день.
func (o Options) artifactName(kind string) string {
	if o.Date.Qualifies() {
		return o.artifactNameOr(fmt.Sprintf("%s-%s-dezembro.pdf", kind, o.Date))
	}
	return o.artifactNameOr(kind + ".pdf")
}

// artifactNameOr возвращает переопределение либо переданное имя как
// есть. Нужен отчётам без датного суффикса (карточка клиента не
// фильтруется по дате).
func (o Options) artifactNameOr(name string) string {
	if o.Filename != "" {
		return o.Filename
	}
	return name
}

// Artifact — готовый документ: имя файла и байты PDF.
type Artifact struct {
	Name  string
	data  []byte
	pages int
}

// Pages возвращает число страниц документа.
func (a *Artifact) Pages() int {
	return a.pages
}

// Bytes возвращает содержимое документа.
func (a *Artifact) Bytes() []byte {
	return a.data
}

// Save записывает артефакт в каталог под своим именем и возвращает
// итоговый путь.
func (a *Artifact) Save(dir string) (string, error) {
	path := filepath.Join(dir, a.Name)
	if err := os.WriteFile(path, a.data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeName готовит интерполируемое имя (клиента, товара) для имени
// файла: каждый не-алфанумерик заменяется подчёркиванием.
func sanitizeName(s string) string {
	return nonAlnum.ReplaceAllString(s, "_")
}

// withDateSuffix дополняет заголовок выбранным днём декабря.
func withDateSuffix(title string, date analytics.DateSelector) string {
	if date.Qualifies() {
		return fmt.Sprintf("%s - %s de Dezembro", title, date)
	}
	return title
}

// document — один строящийся PDF с курсором вертикальной позиции.
// Курсор — единственное изменяемое состояние ядра отчётов; каждый
// вызов построителя владеет своим document и никогда его не разделяет.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func newDocument(now time.Time) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Переносами страниц управляет курсор, а не gofpdf.
	pdf.SetAutoPageBreak(false, 0)
	// Штамп в метаданных PDF берём из тех же часов, что и «Gerado em»,
	// иначе повторная сборка одинакового входа даёт разные байты.
	pdf.SetCreationDate(now)
	// Словари каталога gofpdf пишет в порядке обхода map; сортировка
	// включается явно, иначе байты от сборки к сборке пляшут.
	pdf.SetCatalogSort(true)
	pdf.AddPage()
	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		y:   pageTop,
	}
}

// titleBlock печатает заголовок отчёта и штамп времени генерации.
func (d *document) titleBlock(title string, now time.Time) {
	d.pdf.SetFont("Helvetica", "", 18)
	d.pdf.Text(pageLeft, titleY, d.tr(title))
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.Text(pageLeft, stampY, d.tr("Gerado em: "+now.Format("02/01/2006, 15:04:05")))
}

// advance сдвигает курсор вниз.
func (d *document) advance(by float64) {
	d.y += by
}

// ensureRoom начинает новую страницу, если курсор ушёл за порог низа.
// Возвращает true, если перенос случился.
func (d *document) ensureRoom() bool {
	if d.y > maxY {
		d.breakPage()
		return true
	}
	return false
}

// breakPage переводит документ на новую страницу и сбрасывает курсор.
func (d *document) breakPage() {
	d.pdf.AddPage()
	d.y = pageTop
}

// text печатает строку текущей позиции курсора обычным начертанием.
func (d *document) text(size float64, s string) {
	d.pdf.SetFont("Helvetica", "", size)
	d.pdf.Text(pageLeft, d.y, d.tr(s))
}

// separator рисует горизонтальную линию-разделитель между секциями.
func (d *document) separator() {
	d.pdf.SetLineWidth(0.5)
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.Line(pageLeft, d.y, pageRight, d.y)
}

// artifact завершает документ и отдаёт именованный артефакт.
// Ошибка рендера доводится до вызывающего без обёртывания в частичный
// файл: при ошибке байтов нет.
func (d *document) artifact(name string) (*Artifact, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &Artifact{Name: name, data: buf.Bytes(), pages: d.pageCount()}, nil
}

type tableColumn struct {
	header string
	width  float64
}

// table — описание полосатой таблицы: чёрная шапка, чередующаяся
// заливка строк, опциональная жирная итоговая строка.
type table struct {
	columns  []tableColumn
	rows     [][]string
	footer   []string
	fontSize float64
}

// addTable рисует таблицу от текущего курсора, перенося страницу и
// повторяя шапку, когда строки упираются в порог. По завершении курсор
// стоит на измеренном низе таблицы.
func (d *document) addTable(t table) {
	if len(t.columns) == 0 {
		// Нечего измерять — запасной сдвиг вместо нижней границы.
		d.advance(fallbackAdvance)
		return
	}

	d.ensureRoom()
	d.tableHead(t)
	for i, row := range t.rows {
		if d.ensureRoom() {
			d.tableHead(t)
		}
		d.tableRow(t, row, i%2 == 1)
	}
	if len(t.footer) > 0 {
		if d.ensureRoom() {
			d.tableHead(t)
		}
		d.tableFoot(t)
	}
}

func (d *document) tableHead(t table) {
	d.pdf.SetFont("Helvetica", "B", t.fontSize)
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetXY(pageLeft, d.y)
	for _, col := range t.columns {
		d.pdf.CellFormat(col.width, headRowHeight, d.tr(col.header), "", 0, "L", true, 0, "")
	}
	d.pdf.SetTextColor(0, 0, 0)
	d.y += headRowHeight
}

func (d *document) tableRow(t table, cells []string, shaded bool) {
	d.pdf.SetFont("Helvetica", "", t.fontSize)
	d.pdf.SetFillColor(245, 245, 245)
	d.pdf.SetXY(pageLeft, d.y)
	for i, col := range t.columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		d.pdf.CellFormat(col.width, bodyRowHeight, d.tr(cell), "", 0, "L", shaded, 0, "")
	}
	d.y += bodyRowHeight
}

func (d *document) tableFoot(t table) {
	d.pdf.SetFont("Helvetica", "B", t.fontSize)
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetXY(pageLeft, d.y)
	for i, col := range t.columns {
		var cell string
		if i < len(t.footer) {
			cell = t.footer[i]
		}
		d.pdf.CellFormat(col.width, headRowHeight, d.tr(cell), "", 0, "L", true, 0, "")
	}
	d.pdf.SetTextColor(0, 0, 0)
	d.y += headRowHeight
}

// pageCount возвращает число страниц построенного документа.
func (d *document) pageCount() int {
	return d.pdf.PageCount()
}
