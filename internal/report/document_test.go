package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/encomendas/internal/analytics"
)

func testNow() time.Time {
	return time.Date(2025, time.December, 20, 10, 30, 0, 0, time.Local)
}

func TestEnsureRoomBelowThreshold(t *testing.T) {
	d := newDocument(testNow())
	d.y = 100
	if d.ensureRoom() {
		t.Fatal("no page break expected below the threshold")
	}
	if d.pageCount() != 1 {
		t.Fatalf("expected 1 page, got %d", d.pageCount())
	}
}

func TestEnsureRoomBreaksPage(t *testing.T) {
	d := newDocument(testNow())
	d.y = maxY + 1
	if !d.ensureRoom() {
		t.Fatal("expected a page break past the threshold")
	}
	if d.y != pageTop {
		t.Fatalf("cursor must reset to top margin, got %v", d.y)
	}
	if d.pageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", d.pageCount())
	}
}

func TestAdvance(t *testing.T) {
	d := newDocument(testNow())
	start := d.y
	d.advance(8)
	d.advance(6)
	if d.y != start+14 {
		t.Fatalf("expected cursor at %v, got %v", start+14, d.y)
	}
}

func TestAddTablePaginatesLongBody(t *testing.T) {
	d := newDocument(testNow())
	d.y = 35

	rows := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, []string{fmt.Sprintf("PRODUTO %02d", i), "1 un"})
	}
	d.addTable(table{
		columns:  []tableColumn{{"Produto", 120}, {"Quantidade Total", 62}},
		rows:     rows,
		fontSize: 10,
	})

	if d.pageCount() < 2 {
		t.Fatalf("60 rows must not fit one page, got %d pages", d.pageCount())
	}
	if d.y > maxY+bodyRowHeight {
		t.Fatalf("cursor left past the threshold: %v", d.y)
	}
}

// После переноса внутри таблицы шапка перерисовывается: итоговый
// курсор на второй странице учитывает её высоту. 60 строк от y=35:
// шапка 35→43, 30 строк до 253, перенос, шапка 20→28, ещё 30 строк
// до 238. Без повторной шапки курсор остановился бы на 230.
func TestAddTableRepeatsHeadAfterBreak(t *testing.T) {
	d := newDocument(testNow())
	d.y = 35

	rows := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, []string{fmt.Sprintf("PRODUTO %02d", i), "1 un"})
	}
	d.addTable(table{
		columns:  []tableColumn{{"Produto", 120}, {"Quantidade Total", 62}},
		rows:     rows,
		fontSize: 10,
	})

	want := pageTop + headRowHeight + 30*bodyRowHeight
	if d.y != want {
		t.Fatalf("expected cursor at %v after the repeated head, got %v", want, d.y)
	}
	if d.pageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", d.pageCount())
	}
}

func TestAddTableWithoutColumnsUsesFallbackAdvance(t *testing.T) {
	d := newDocument(testNow())
	d.y = 35
	d.addTable(table{})
	if d.y != 35+fallbackAdvance {
		t.Fatalf("expected fallback advance, cursor at %v", d.y)
	}
}

func TestArtifactNameDefaults(t *testing.T) {
	cases := []struct {
		opts Options
		kind string
		want string
	}{
		{Options{}, "quantidade-total-por-produto", "quantidade-total-por-produto.pdf"},
		{Options{Date: analytics.DateAll}, "perus", "perus.pdf"},
		{Options{Date: analytics.Date23}, "quantidade-total-por-produto", "quantidade-total-por-produto-23-dezembro.pdf"},
		{Options{Date: analytics.Date24}, "todas-fichas-cliente", "todas-fichas-cliente-24-dezembro.pdf"},
		{Options{Date: analytics.Date23, Filename: "custom.pdf"}, "perus", "custom.pdf"},
	}
	for _, tc := range cases {
		if got := tc.opts.artifactName(tc.kind); got != tc.want {
			t.Fatalf("artifactName(%q, date=%q): expected %q, got %q", tc.kind, tc.opts.Date, tc.want, got)
		}
	}
}

func TestArtifactNameOr(t *testing.T) {
	if got := (Options{}).artifactNameOr("ficha.pdf"); got != "ficha.pdf" {
		t.Fatalf("expected literal name, got %q", got)
	}
	if got := (Options{Filename: "custom.pdf"}).artifactNameOr("ficha.pdf"); got != "custom.pdf" {
		t.Fatalf("expected override, got %q", got)
	}
}

func TestSanitizeName(t *testing.T) {
	if got := sanitizeName("Maria João & Filhos"); got != "Maria_Jo_o___Filhos" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
	if got := sanitizeName("BACALHAU"); got != "BACALHAU" {
		t.Fatalf("alphanumerics must pass through, got %q", got)
	}
}

func TestWithDateSuffix(t *testing.T) {
	if got := withDateSuffix("Perus", analytics.DateAll); got != "Perus" {
		t.Fatalf("selector all must not qualify the title, got %q", got)
	}
	if got := withDateSuffix("Perus", analytics.Date24); got != "Perus - 24 de Dezembro" {
		t.Fatalf("unexpected qualified title %q", got)
	}
}

func TestTitleBlockStamp(t *testing.T) {
	d := newDocument(testNow())
	d.titleBlock("Relatório", testNow())
	a, err := d.artifact("x.pdf")
	if err != nil {
		t.Fatalf("artifact failed: %v", err)
	}
	if len(a.Bytes()) == 0 {
		t.Fatal("empty artifact")
	}
	if !strings.HasPrefix(string(a.Bytes()[:5]), "%PDF-") {
		t.Fatalf("artifact is not a PDF: %q", a.Bytes()[:5])
	}
}
