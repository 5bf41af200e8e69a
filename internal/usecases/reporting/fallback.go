package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

const (
	chartRevenueByDayTitle = "Ingresos por día"
	chartTopProductsTitle  = "Top productos por facturación"
	emptyList              = "—"
)

var segmentOrder = []string{
	domain.SegmentVIP,
	domain.SegmentGrowing,
	domain.SegmentAtRisk,
	domain.SegmentOccasional,
}

// FallbackAnswer é a resposta determinística do /ai/ask quando o provedor falha
func FallbackAnswer(m *domain.Metrics, question string) string {
	avg := m.Averages

	return fmt.Sprintf("Resumen (básico):\n"+
		"- Ingresos: %s € en %d pedidos. AOV: %s €.\n"+
		"- Top productos: %s.\n"+
		"- Pregunta: “%s”.",
		money(avg.Revenue), avg.Orders, money(avg.AOV),
		productList(m.TopProducts, 3),
		question)
}

// FallbackTrendsReport substitui o informe narrativo do resumo analítico
func FallbackTrendsReport(m *domain.Metrics) string {
	avg := m.Averages

	return fmt.Sprintf("Informe de tendencias (básico):\n"+
		"- Ventas totales: %s € en %d pedidos.\n"+
		"- Ticket medio (AOV): %s €; gasto medio por cliente: %s €.\n"+
		"- Top productos por facturación: %s.\n"+
		"- Segmentación RFM: %s.\n"+
		"- Sugerencias: potenciar bundles de los top productos y campañas a clientes '%s'.",
		money(avg.Revenue), avg.Orders,
		money(avg.AOV), money(avg.AvgPerCustomer),
		productList(m.TopProducts, 5),
		segmentList(m.RFM.Summary),
		domain.SegmentAtRisk)
}

func DefaultCharts(m *domain.Metrics) []domain.ChartDescriptor {
	sales := m.SalesByDay
	if sales == nil {
		sales = []domain.DailySales{}
	}
	products := m.TopProducts
	if products == nil {
		products = []domain.ProductRanking{}
	}

	return []domain.ChartDescriptor{
		{Type: domain.ChartLine, Title: chartRevenueByDayTitle, XKey: "date", YKey: "revenue", Data: sales},
		{Type: domain.ChartBar, Title: chartTopProductsTitle, XKey: "name", YKey: "revenue", Data: products},
	}
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func productList(products []domain.ProductRanking, n int) string {
	top := head(products, n)
	if len(top) == 0 {
		return emptyList
	}

	parts := make([]string, 0, len(top))
	for _, p := range top {
		parts = append(parts, fmt.Sprintf("%s (%s€)", p.Name, money(p.Revenue)))
	}
	return strings.Join(parts, ", ")
}

func segmentList(summary map[string]int) string {
	parts := make([]string, 0, len(summary))
	for _, segment := range segmentOrder {
		if count, ok := summary[segment]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", segment, count))
		}
	}
	if len(parts) == 0 {
		return emptyList
	}
	return strings.Join(parts, ", ")
}
