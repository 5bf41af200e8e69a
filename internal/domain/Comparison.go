package domain

// PctUnavailable é exibido quando o período anterior é zero
const PctUnavailable = "—"

type KPIDelta struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Diff     float64 `json:"diff"`
	Pct      string  `json:"pct"`
}

type ComparisonDelta struct {
	Revenue KPIDelta `json:"revenue"`
	Orders  KPIDelta `json:"orders"`
	AOV     KPIDelta `json:"aov"`
}

type Comparison struct {
	Current  *Metrics        `json:"current"`
	Previous *Metrics        `json:"previous"`
	Delta    ComparisonDelta `json:"delta"`
}
