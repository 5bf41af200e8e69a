package domain

const (
	ChartLine = "line"
	ChartBar  = "bar"
)

// ChartDescriptor descreve um gráfico sugerido para o frontend
type ChartDescriptor struct {
	Type  string `json:"type" mapstructure:"type"`
	Title string `json:"title" mapstructure:"title"`
	XKey  string `json:"xKey" mapstructure:"xKey"`
	YKey  string `json:"yKey" mapstructure:"yKey"`
	Data  any    `json:"data" mapstructure:"data"`
}
