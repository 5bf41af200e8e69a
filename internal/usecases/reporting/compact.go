package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

const (
	MaxSeriesEntries = 120
	MaxTopProducts   = 10
	MaxBasketPairs   = 10
	MaxCompareTop    = 5

	SeriesDaily  = "daily"
	SeriesWeekly = "weekly"

	compactNotes = "Los importes están en EUR. Si necesitas más detalle, pide qué dato exacto calcular."
)

type WeeklySales struct {
	Week    string  `json:"week"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesSeries carrega []domain.DailySales no modo daily ou []WeeklySales no modo weekly
type SalesSeries struct {
	Mode   string `json:"mode"`
	Series any    `json:"series"`
}

// CompactMetrics é a projeção limitada das métricas enviada ao provedor
type CompactMetrics struct {
	Range       domain.DateRange        `json:"range"`
	Averages    domain.Averages         `json:"averages"`
	Sales       SalesSeries             `json:"sales"`
	TopProducts []domain.ProductRanking `json:"top_products"`
	BasketPairs []domain.BasketPair     `json:"basket_pairs"`
	RFMSummary  map[string]int          `json:"rfm_summary"`
	Notes       string                  `json:"notes"`
}

type CompactComparison struct {
	CurrentRange        domain.DateRange        `json:"current_range"`
	PreviousRange       domain.DateRange        `json:"previous_range"`
	Delta               domain.ComparisonDelta  `json:"delta"`
	CurrentTopProducts  []domain.ProductRanking `json:"current_top_products"`
	PreviousTopProducts []domain.ProductRanking `json:"previous_top_products"`
	CurrentSales        SalesSeries             `json:"current_sales"`
	PreviousSales       SalesSeries             `json:"previous_sales"`
}

func Compact(m *domain.Metrics) CompactMetrics {
	summary := m.RFM.Summary
	if summary == nil {
		summary = map[string]int{}
	}

	return CompactMetrics{
		Range:       m.Range,
		Averages:    m.Averages,
		Sales:       CompactSales(m.SalesByDay),
		TopProducts: head(m.TopProducts, MaxTopProducts),
		BasketPairs: head(m.BasketPairs, MaxBasketPairs),
		RFMSummary:  summary,
		Notes:       compactNotes,
	}
}

func CompactComparisonOf(c *domain.Comparison) CompactComparison {
	return CompactComparison{
		CurrentRange:        c.Current.Range,
		PreviousRange:       c.Previous.Range,
		Delta:               c.Delta,
		CurrentTopProducts:  head(c.Current.TopProducts, MaxCompareTop),
		PreviousTopProducts: head(c.Previous.TopProducts, MaxCompareTop),
		CurrentSales:        CompactSales(c.Current.SalesByDay),
		PreviousSales:       CompactSales(c.Previous.SalesByDay),
	}
}

// CompactSales reagrupa em semanas ISO quando a série diária passa do limite;
// caso contrário mantém os últimos MaxSeriesEntries dias.
func CompactSales(sales []domain.DailySales) SalesSeries {
	if len(sales) > MaxSeriesEntries {
		return SalesSeries{Mode: SeriesWeekly, Series: WeeklyBuckets(sales)}
	}

	daily := tail(sales, MaxSeriesEntries)
	if daily == nil {
		daily = []domain.DailySales{}
	}

	return SalesSeries{Mode: SeriesDaily, Series: daily}
}

// WeeklyBuckets soma pedidos e faturamento por semana ISO ("2025-W07"), ordenado pela chave.
// Entradas com data inválida são ignoradas.
func WeeklyBuckets(sales []domain.DailySales) []WeeklySales {
	type bucket struct {
		orders  int
		revenue decimal.Decimal
	}

	buckets := make(map[string]*bucket)
	for _, s := range sales {
		day, err := time.Parse(time.DateOnly, s.Date)
		if err != nil {
			continue
		}

		year, week := day.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)

		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.orders += s.Orders
		b.revenue = b.revenue.Add(decimal.NewFromFloat(s.Revenue))
	}

	weeks := make([]WeeklySales, 0, len(buckets))
	for key, b := range buckets {
		weeks = append(weeks, WeeklySales{
			Week:    key,
			Orders:  b.orders,
			Revenue: b.revenue.Round(2).InexactFloat64(),
		})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })

	return weeks
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		if items == nil {
			return []T{}
		}
		return items
	}
	return items[:n]
}

func tail[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
