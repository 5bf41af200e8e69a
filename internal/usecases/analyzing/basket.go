package analyzing

import (
	"sort"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

type pairKey struct {
	a, b int64
}

// BasketPairs conta pares de produtos distintos comprados no mesmo albarán.
// Apenas pares com suporte >= minSupport entram no resultado.
func BasketPairs(lines []domain.OrderLine, minSupport, limit int) []domain.BasketPair {
	orderIDs := make([]int64, 0)
	products := make(map[int64]map[int64]struct{})

	for _, line := range lines {
		set, ok := products[line.OrderID]
		if !ok {
			set = make(map[int64]struct{})
			products[line.OrderID] = set
			orderIDs = append(orderIDs, line.OrderID)
		}
		set[line.ProductID] = struct{}{}
	}

	singleCount := make(map[int64]int)
	pairCount := make(map[pairKey]int)
	pairOrder := make([]pairKey, 0)

	for _, orderID := range orderIDs {
		uniq := make([]int64, 0, len(products[orderID]))
		for id := range products[orderID] {
			uniq = append(uniq, id)
		}
		sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })

		for _, id := range uniq {
			singleCount[id]++
		}

		for i := 0; i < len(uniq); i++ {
			for j := i + 1; j < len(uniq); j++ {
				key := pairKey{a: uniq[i], b: uniq[j]}
				if _, seen := pairCount[key]; !seen {
					pairOrder = append(pairOrder, key)
				}
				pairCount[key]++
			}
		}
	}

	totalOrders := len(orderIDs)
	pairs := make([]domain.BasketPair, 0)

	for _, key := range pairOrder {
		support := pairCount[key]
		if support < minSupport {
			continue
		}

		var confidence, lift float64
		if singleCount[key.a] > 0 {
			confidence = float64(support) / float64(singleCount[key.a])
		}
		if totalOrders > 0 && singleCount[key.b] > 0 {
			lift = confidence / (float64(singleCount[key.b]) / float64(totalOrders))
		}

		pairs = append(pairs, domain.BasketPair{
			AID:        key.a,
			BID:        key.b,
			Support:    support,
			Confidence: confidence,
			Lift:       lift,
		})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Support != pairs[j].Support {
			return pairs[i].Support > pairs[j].Support
		}
		return pairs[i].Confidence > pairs[j].Confidence
	})

	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}

	return pairs
}

func applyPairNames(pairs []domain.BasketPair, names map[int64]string) {
	for i := range pairs {
		pairs[i].AName = ProductName(pairs[i].AID, names)
		pairs[i].BName = ProductName(pairs[i].BID, names)
	}
}
