package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

// RFM pontua cada cliente (1..4) em recência, frequência e valor usando os
// quartis da própria população e classifica em segmentos.
func RFM(history []domain.CustomerHistory, reference time.Time) domain.RFM {
	result := domain.RFM{
		Summary:    make(map[string]int),
		ByCustomer: make([]domain.RFMCustomer, 0, len(history)),
	}

	if len(history) == 0 {
		return result
	}

	ref := domain.DateOf(reference)
	recencies := make([]float64, len(history))
	frequencies := make([]float64, len(history))
	monetaries := make([]float64, len(history))

	for i, h := range history {
		recencies[i] = float64(recencyDays(h.LastPurchase, ref))
		frequencies[i] = float64(h.Frequency)
		monetaries[i] = h.Monetary
	}

	rq := quartiles(recencies)
	fq := quartiles(frequencies)
	mq := quartiles(monetaries)

	for i, h := range history {
		customer := domain.RFMCustomer{
			CustomerID:  h.CustomerID,
			RecencyDays: int(recencies[i]),
			Frequency:   h.Frequency,
			Monetary:    h.Monetary,
			R:           scoreRecency(recencies[i], rq),
			F:           score(frequencies[i], fq),
			M:           score(monetaries[i], mq),
		}
		customer.Segment = segment(customer.R, customer.F, customer.M)

		result.ByCustomer = append(result.ByCustomer, customer)
		result.Summary[customer.Segment]++
	}

	sort.SliceStable(result.ByCustomer, func(i, j int) bool {
		return result.ByCustomer[i].CustomerID < result.ByCustomer[j].CustomerID
	})

	return result
}

func recencyDays(last *time.Time, ref time.Time) int {
	if last == nil {
		return domain.RecencyUnknownDays
	}
	return int(ref.Sub(domain.DateOf(*last)).Hours() / 24)
}

// quartiles devolve os quantis 25/50/75 com interpolação linear quando há ao
// menos 4 valores; abaixo disso usa {mínimo, mediana, máximo}.
func quartiles(values []float64) [3]float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n >= 4 {
		return [3]float64{
			quantile(sorted, 0.25),
			quantile(sorted, 0.5),
			quantile(sorted, 0.75),
		}
	}

	return [3]float64{sorted[0], median(sorted), sorted[n-1]}
}

func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// menor recência é melhor
func scoreRecency(v float64, q [3]float64) int {
	switch {
	case v <= q[0]:
		return 4
	case v <= q[1]:
		return 3
	case v <= q[2]:
		return 2
	default:
		return 1
	}
}

func score(v float64, q [3]float64) int {
	switch {
	case v <= q[0]:
		return 1
	case v <= q[1]:
		return 2
	case v <= q[2]:
		return 3
	default:
		return 4
	}
}

func segment(r, f, m int) string {
	switch {
	case r >= 3 && f == 4 && m == 4:
		return domain.SegmentVIP
	case f >= 3 && m >= 3:
		return domain.SegmentGrowing
	case r == 1 && f <= 2:
		return domain.SegmentAtRisk
	default:
		return domain.SegmentOccasional
	}
}
