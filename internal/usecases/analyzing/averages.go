package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

// Averages calcula os KPIs do intervalo. Albaranes sem cliente formam um grupo
// próprio no gasto médio por cliente.
func Averages(spend []domain.CustomerSpend) domain.Averages {
	var (
		orders int
		total  = decimal.Zero
	)

	for _, s := range spend {
		orders += s.Orders
		total = total.Add(decimal.NewFromFloat(s.Revenue))
	}

	averages := domain.Averages{
		Orders:  orders,
		Revenue: total.InexactFloat64(),
	}

	if orders > 0 {
		averages.AOV = total.Div(decimal.NewFromInt(int64(orders))).InexactFloat64()
	}

	if len(spend) > 0 {
		averages.AvgPerCustomer = total.Div(decimal.NewFromInt(int64(len(spend)))).InexactFloat64()
	}

	return averages
}
