package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

const (
	maxSalesRows = 60
	maxTableRows = 12

	pageMarginLeft   = 18.0
	pageMarginTop    = 26.0
	pageMarginRight  = 18.0
	pageMarginBottom = 18.0

	rowHeight = 7.0
)

var segmentOrder = []string{
	domain.SegmentVIP,
	domain.SegmentGrowing,
	domain.SegmentAtRisk,
	domain.SegmentOccasional,
}

// TrendsRenderer gera o PDF do informe de tendências
type TrendsRenderer struct{}

func NewTrendsRenderer() *TrendsRenderer {
	return &TrendsRenderer{}
}

type page struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
}

func (r *TrendsRenderer) RenderTrends(doc *domain.TrendsDocument) ([]byte, error) {
	if doc == nil || doc.Current == nil {
		return nil, errors.New("document: trends document without metrics")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginLeft, pageMarginTop, pageMarginRight)
	pdf.SetAutoPageBreak(true, pageMarginBottom+4)
	pdf.SetTitle("Tendencias", true)
	pdf.SetAuthor(doc.StoreName, true)
	pdf.AliasNbPages("")

	pageWidth, _ := pdf.GetPageSize()
	p := &page{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: pageWidth - pageMarginLeft - pageMarginRight,
	}

	rangeText := fmt.Sprintf("%s a %s", doc.Current.Range.FromString(), doc.Current.Range.ToString())
	p.headerFooter(doc.StoreName, "Tendencias · "+rangeText)

	pdf.AddPage()
	p.title("Informe de Tendencias")
	p.muted("Rango: " + rangeText)
	pdf.Ln(4)

	p.kpis(doc.Current.Averages)
	if doc.Comparison != nil {
		p.comparison(doc.Comparison, doc.AICompareReport)
	}
	p.sales(doc.Current.SalesByDay)
	p.topProducts(doc.Current.TopProducts)
	p.rfm(doc.Current.RFM.Summary)
	p.pairs(doc.Current.BasketPairs)

	pdf.AddPage()
	p.title("Informe detallado (IA)")
	p.muted("Este apartado está generado por la IA a partir de todas las métricas del rango.")
	pdf.Ln(3)
	p.paragraphs(doc.AIReport)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "document: render trends pdf")
	}

	return buf.Bytes(), nil
}

func (p *page) headerFooter(storeName, rightText string) {
	p.pdf.SetHeaderFunc(func() {
		p.pdf.SetY(12)
		p.pdf.SetFont("Helvetica", "B", 11)
		p.pdf.SetTextColor(17, 24, 39)
		p.pdf.CellFormat(p.width/2, 6, p.tr(storeName), "", 0, "L", false, 0, "")
		p.pdf.SetFont("Helvetica", "", 9)
		p.pdf.SetTextColor(107, 114, 128)
		p.pdf.CellFormat(p.width/2, 6, p.tr(rightText), "", 1, "R", false, 0, "")
		p.pdf.SetDrawColor(229, 231, 235)
		p.pdf.Line(pageMarginLeft, 19, pageMarginLeft+p.width, 19)
		p.pdf.SetY(pageMarginTop)
	})

	p.pdf.SetFooterFunc(func() {
		p.pdf.SetY(-pageMarginBottom)
		p.pdf.SetDrawColor(229, 231, 235)
		p.pdf.Line(pageMarginLeft, p.pdf.GetY(), pageMarginLeft+p.width, p.pdf.GetY())
		p.pdf.SetFont("Helvetica", "", 8)
		p.pdf.SetTextColor(107, 114, 128)
		p.pdf.CellFormat(p.width/2, 8, p.tr("Documento generado automáticamente."), "", 0, "L", false, 0, "")
		p.pdf.CellFormat(p.width/2, 8, p.tr(fmt.Sprintf("Página %d/{nb}", p.pdf.PageNo())), "", 0, "R", false, 0, "")
	})
}

func (p *page) title(text string) {
	p.pdf.SetFont("Helvetica", "B", 16)
	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.CellFormat(p.width, 9, p.tr(text), "", 1, "L", false, 0, "")
}

func (p *page) heading(text string) {
	p.pdf.Ln(4)
	p.pdf.SetFont("Helvetica", "B", 12)
	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.CellFormat(p.width, 8, p.tr(text), "", 1, "L", false, 0, "")
}

func (p *page) muted(text string) {
	p.pdf.SetFont("Helvetica", "", 9)
	p.pdf.SetTextColor(107, 114, 128)
	p.pdf.MultiCell(p.width, 5, p.tr(text), "", "L", false)
}

// table desenha cabeçalho e linhas; widths são frações da largura útil
func (p *page) table(widths []float64, align []string, header []string, rows [][]string) {
	p.pdf.SetDrawColor(229, 231, 235)
	p.pdf.SetFillColor(249, 250, 251)
	p.pdf.SetTextColor(55, 65, 81)
	p.pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		p.pdf.CellFormat(p.width*widths[i], rowHeight, p.tr(h), "1", 0, "C", true, 0, "")
	}
	p.pdf.Ln(-1)

	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			p.pdf.CellFormat(p.width*widths[i], rowHeight, p.tr(cell), "1", 0, align[i], false, 0, "")
		}
		p.pdf.Ln(-1)
	}
}

func (p *page) kpis(avg domain.Averages) {
	p.table(
		[]float64{0.25, 0.25, 0.25, 0.25},
		[]string{"C", "C", "C", "C"},
		[]string{"Ingresos", "Pedidos", "Ticket medio (AOV)", "Gasto medio/cliente"},
		[][]string{{eur(avg.Revenue), strconv.Itoa(avg.Orders), eur(avg.AOV), eur(avg.AvgPerCustomer)}},
	)
}

func (p *page) comparison(c *domain.Comparison, aiReport string) {
	p.heading("Comparativa")
	if c.Previous != nil {
		p.muted(fmt.Sprintf("Periodo anterior: %s a %s", c.Previous.Range.FromString(), c.Previous.Range.ToString()))
	}

	d := c.Delta
	p.table(
		[]float64{0.26, 0.18, 0.18, 0.18, 0.20},
		[]string{"L", "R", "R", "R", "R"},
		[]string{"Métrica", "Actual", "Anterior", "Dif.", "%"},
		[][]string{
			{"Ingresos", eur(d.Revenue.Current), eur(d.Revenue.Previous), eur(d.Revenue.Diff), d.Revenue.Pct},
			{"Pedidos", integer(d.Orders.Current), integer(d.Orders.Previous), integer(d.Orders.Diff), d.Orders.Pct},
			{"AOV", eur(d.AOV.Current), eur(d.AOV.Previous), eur(d.AOV.Diff), d.AOV.Pct},
		},
	)

	if strings.TrimSpace(aiReport) != "" {
		p.heading("Lectura de la comparativa (IA)")
		p.paragraphs(aiReport)
	}
}

func (p *page) sales(sales []domain.DailySales) {
	p.heading("Ventas por día (resumen)")

	if len(sales) > maxSalesRows {
		sales = sales[len(sales)-maxSalesRows:]
	}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{s.Date, strconv.Itoa(s.Orders), eur(s.Revenue)})
	}

	p.table([]float64{0.35, 0.25, 0.40}, []string{"L", "R", "R"}, []string{"Fecha", "Pedidos", "Ingresos"}, rows)
}

func (p *page) topProducts(products []domain.ProductRanking) {
	p.heading("Top productos")

	if len(products) > maxTableRows {
		products = products[:maxTableRows]
	}
	rows := make([][]string, 0, len(products))
	for _, t := range products {
		rows = append(rows, []string{t.Name, strconv.Itoa(t.Qty), eur(t.Revenue)})
	}

	p.table([]float64{0.55, 0.15, 0.30}, []string{"L", "R", "R"}, []string{"Producto", "Unidades", "Facturación"}, rows)
}

func (p *page) rfm(summary map[string]int) {
	p.heading("Segmentación RFM")

	rows := make([][]string, 0, len(summary))
	for _, segment := range segmentOrder {
		if count, ok := summary[segment]; ok {
			rows = append(rows, []string{segment, strconv.Itoa(count)})
		}
	}
	if len(rows) == 0 {
		p.muted("Sin datos suficientes para segmentar.")
		return
	}

	p.table([]float64{0.70, 0.30}, []string{"L", "R"}, []string{"Segmento", "Clientes"}, rows)
}

func (p *page) pairs(pairs []domain.BasketPair) {
	p.heading("Co-compras (pares)")

	if len(pairs) == 0 {
		p.muted("No hay pares con suficiente soporte.")
		return
	}
	if len(pairs) > maxTableRows {
		pairs = pairs[:maxTableRows]
	}

	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{
			pair.AName,
			pair.BName,
			strconv.Itoa(pair.Support),
			fixed(pair.Confidence),
			fixed(pair.Lift),
		})
	}

	p.table(
		[]float64{0.30, 0.30, 0.12, 0.14, 0.14},
		[]string{"L", "L", "R", "R", "R"},
		[]string{"Producto A", "Producto B", "Support", "Confidence", "Lift"},
		rows,
	)
}

// paragraphs escreve cada linha não vazia do texto, sem marcações markdown de ênfase
func (p *page) paragraphs(text string) {
	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.SetTextColor(17, 24, 39)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if line == "" {
			continue
		}
		p.pdf.MultiCell(p.width, 5.5, p.tr(line), "", "L", false)
		p.pdf.Ln(1)
	}
}

func eur(v float64) string {
	return fixed(v) + " €"
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func integer(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(0)
}
