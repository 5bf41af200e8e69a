package analyzing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

type productTotals struct {
	id      int64
	qty     int
	revenue decimal.Decimal
}

// TopProducts agrupa as linhas por produto e ordena por faturamento (qty * preço).
// Empates mantêm a ordem em que o produto apareceu pela primeira vez.
func TopProducts(lines []domain.OrderLine, limit int) []domain.ProductRanking {
	order := make([]int64, 0)
	totals := make(map[int64]*productTotals)

	for _, line := range lines {
		t, ok := totals[line.ProductID]
		if !ok {
			t = &productTotals{id: line.ProductID}
			totals[line.ProductID] = t
			order = append(order, line.ProductID)
		}
		t.qty += line.Quantity
		t.revenue = t.revenue.Add(lineAmount(line))
	}

	ranking := make([]domain.ProductRanking, 0, len(order))
	for _, id := range order {
		t := totals[id]
		ranking = append(ranking, domain.ProductRanking{
			ProductID: t.id,
			Qty:       t.qty,
			Revenue:   t.revenue.Round(2).InexactFloat64(),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue > ranking[j].Revenue
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking
}

func lineAmount(line domain.OrderLine) decimal.Decimal {
	return decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// ProductName devolve o nome cadastrado ou "Producto {id}" quando não houver
func ProductName(id int64, names map[int64]string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Producto %d", id)
}

func applyProductNames(products []domain.ProductRanking, names map[int64]string) {
	for i := range products {
		products[i].Name = ProductName(products[i].ProductID, names)
	}
}
