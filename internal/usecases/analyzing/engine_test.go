package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

func TestTopProducts(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderID: 1, ProductID: 3, Quantity: 1, UnitPrice: 320},
		{OrderID: 1, ProductID: 1, Quantity: 1, UnitPrice: 1200},
		{OrderID: 2, ProductID: 2, Quantity: 2, UnitPrice: 160},
		{OrderID: 3, ProductID: 1, Quantity: 2, UnitPrice: 1200},
		{OrderID: 3, ProductID: 4, Quantity: 1, UnitPrice: 99.99},
	}

	t.Run("ordena por faturamento com empate estável", func(t *testing.T) {
		got := TopProducts(lines, 10)

		require.Len(t, got, 4)
		assert.Equal(t, domain.ProductRanking{ProductID: 1, Qty: 3, Revenue: 3600}, got[0])
		// 3 e 2 empatam em 320: mantém a ordem de aparição
		assert.Equal(t, int64(3), got[1].ProductID)
		assert.Equal(t, int64(2), got[2].ProductID)
		assert.Equal(t, 99.99, got[3].Revenue)
	})

	t.Run("respeita o limite", func(t *testing.T) {
		assert.Len(t, TopProducts(lines, 2), 2)
	})

	t.Run("sem linhas retorna lista vazia", func(t *testing.T) {
		got := TopProducts(nil, 10)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestProductName(t *testing.T) {
	names := map[int64]string{1: "Sofá de cuero Milano"}

	assert.Equal(t, "Sofá de cuero Milano", ProductName(1, names))
	assert.Equal(t, "Producto 9", ProductName(9, names))
}

func TestAverages(t *testing.T) {
	customer := func(id int64) *int64 { return &id }

	tests := []struct {
		name  string
		spend []domain.CustomerSpend
		want  domain.Averages
	}{
		{
			name:  "sem albaranes",
			spend: nil,
			want:  domain.Averages{},
		},
		{
			name: "albaranes sem cliente formam um grupo",
			spend: []domain.CustomerSpend{
				{CustomerID: customer(1), Orders: 3, Revenue: 900},
				{CustomerID: customer(2), Orders: 1, Revenue: 500},
				{CustomerID: nil, Orders: 1, Revenue: 100},
			},
			want: domain.Averages{Orders: 5, Revenue: 1500, AOV: 300, AvgPerCustomer: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Averages(tt.spend))
		})
	}
}

func TestBasketPairs(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 2},
		{OrderID: 2, ProductID: 2}, {OrderID: 2, ProductID: 1},
		{OrderID: 3, ProductID: 1}, {OrderID: 3, ProductID: 3},
	}

	got := BasketPairs(lines, 2, 10)

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].AID)
	assert.Equal(t, int64(2), got[0].BID)
	assert.Equal(t, 2, got[0].Support)
	assert.InDelta(t, 2.0/3.0, got[0].Confidence, 1e-9)
	assert.InDelta(t, 1.0, got[0].Lift, 1e-9)
}

func TestBasketPairs_BelowMinSupport(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 2},
		{OrderID: 2, ProductID: 2}, {OrderID: 2, ProductID: 1},
		{OrderID: 3, ProductID: 1}, {OrderID: 3, ProductID: 3},
	}

	got := BasketPairs(lines, 3, 10)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBasketPairs_RepeatedProductCountsOnce(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 2},
		{OrderID: 2, ProductID: 1}, {OrderID: 2, ProductID: 2},
	}

	got := BasketPairs(lines, 1, 10)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Support)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Equal(t, 1.0, got[0].Lift)
}

func TestBasketPairs_OrderingAndLimit(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 2}, {OrderID: 1, ProductID: 3},
		{OrderID: 2, ProductID: 1}, {OrderID: 2, ProductID: 2},
		{OrderID: 3, ProductID: 2}, {OrderID: 3, ProductID: 3},
		{OrderID: 4, ProductID: 1}, {OrderID: 4, ProductID: 2},
	}

	got := BasketPairs(lines, 1, 2)

	require.Len(t, got, 2)
	assert.Equal(t, pairKey{1, 2}, pairKey{got[0].AID, got[0].BID})
	assert.Equal(t, 3, got[0].Support)
	assert.GreaterOrEqual(t, got[0].Support, got[1].Support)
}

func TestBasketPairs_Empty(t *testing.T) {
	got := BasketPairs(nil, 2, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuartiles(t *testing.T) {
	assert.Equal(t, [3]float64{1.75, 2.5, 3.25}, quartiles([]float64{4, 1, 3, 2}))
	assert.Equal(t, [3]float64{1, 2, 3}, quartiles([]float64{3, 1, 2}))
	assert.Equal(t, [3]float64{1, 1.5, 2}, quartiles([]float64{2, 1}))
	assert.Equal(t, [3]float64{7, 7, 7}, quartiles([]float64{7}))
}

func TestRFM(t *testing.T) {
	ref := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	daysAgo := func(n int) *time.Time {
		d := ref.AddDate(0, 0, -n)
		return &d
	}

	history := []domain.CustomerHistory{
		{CustomerID: 4, LastPurchase: daysAgo(200), Frequency: 1, Monetary: 100},
		{CustomerID: 1, LastPurchase: daysAgo(1), Frequency: 10, Monetary: 5000},
		{CustomerID: 2, LastPurchase: daysAgo(10), Frequency: 5, Monetary: 2000},
		{CustomerID: 3, LastPurchase: daysAgo(50), Frequency: 2, Monetary: 500},
	}

	got := RFM(history, ref)

	require.Len(t, got.ByCustomer, 4)
	assert.Equal(t, domain.RFMCustomer{
		CustomerID: 1, RecencyDays: 1, Frequency: 10, Monetary: 5000,
		R: 4, F: 4, M: 4, Segment: domain.SegmentVIP,
	}, got.ByCustomer[0])
	assert.Equal(t, domain.SegmentGrowing, got.ByCustomer[1].Segment)
	assert.Equal(t, domain.SegmentOccasional, got.ByCustomer[2].Segment)
	assert.Equal(t, domain.SegmentAtRisk, got.ByCustomer[3].Segment)
	assert.Equal(t, 200, got.ByCustomer[3].RecencyDays)
	assert.Equal(t, map[string]int{
		domain.SegmentVIP:        1,
		domain.SegmentGrowing:    1,
		domain.SegmentOccasional: 1,
		domain.SegmentAtRisk:     1,
	}, got.Summary)
}

func TestRFM_EdgeCases(t *testing.T) {
	ref := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("sem clientes", func(t *testing.T) {
		got := RFM(nil, ref)
		assert.Empty(t, got.Summary)
		assert.NotNil(t, got.ByCustomer)
		assert.Empty(t, got.ByCustomer)
	})

	t.Run("cliente único é ocasional", func(t *testing.T) {
		last := ref.AddDate(0, 0, -3)
		got := RFM([]domain.CustomerHistory{{CustomerID: 1, LastPurchase: &last, Frequency: 2, Monetary: 300}}, ref)

		require.Len(t, got.ByCustomer, 1)
		assert.Equal(t, 4, got.ByCustomer[0].R)
		assert.Equal(t, 1, got.ByCustomer[0].F)
		assert.Equal(t, 1, got.ByCustomer[0].M)
		assert.Equal(t, domain.SegmentOccasional, got.ByCustomer[0].Segment)
	})

	t.Run("sem data de compra usa recência sentinela", func(t *testing.T) {
		got := RFM([]domain.CustomerHistory{{CustomerID: 1, Frequency: 1, Monetary: 10}}, ref)
		assert.Equal(t, domain.RecencyUnknownDays, got.ByCustomer[0].RecencyDays)
	})
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "25.0%", Percentage(200, 800))
	assert.Equal(t, "-50.0%", Percentage(-5, 10))
	assert.Equal(t, "—", Percentage(100, 0))
}

func TestDelta(t *testing.T) {
	got := Delta(
		domain.Averages{Orders: 10, Revenue: 1000, AOV: 100},
		domain.Averages{Orders: 0, Revenue: 800, AOV: 0},
	)

	assert.Equal(t, domain.KPIDelta{Current: 1000, Previous: 800, Diff: 200, Pct: "25.0%"}, got.Revenue)
	assert.Equal(t, domain.KPIDelta{Current: 10, Previous: 0, Diff: 10, Pct: "—"}, got.Orders)
	assert.Equal(t, "—", got.AOV.Pct)
}
