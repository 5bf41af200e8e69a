package analyzing

import (
	"fmt"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

// Percentage formata diff/previous com uma casa decimal, ou "—" se previous for zero
func Percentage(diff, previous float64) string {
	if previous == 0 {
		return domain.PctUnavailable
	}
	return fmt.Sprintf("%.1f%%", diff/previous*100)
}

func kpiDelta(current, previous float64) domain.KPIDelta {
	diff := current - previous
	return domain.KPIDelta{
		Current:  current,
		Previous: previous,
		Diff:     diff,
		Pct:      Percentage(diff, previous),
	}
}

// Delta compara os KPIs principais de dois períodos
func Delta(current, previous domain.Averages) domain.ComparisonDelta {
	return domain.ComparisonDelta{
		Revenue: kpiDelta(current.Revenue, previous.Revenue),
		Orders:  kpiDelta(float64(current.Orders), float64(previous.Orders)),
		AOV:     kpiDelta(current.AOV, previous.AOV),
	}
}
