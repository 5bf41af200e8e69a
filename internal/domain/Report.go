package domain

type SummaryReport struct {
	Metrics  *Metrics `json:"metrics"`
	AIReport string   `json:"ai_report"`
}

type ComparisonReport struct {
	Comparison
	AICompareReport string `json:"ai_compare_report"`
}

type Answer struct {
	Answer  string            `json:"answer"`
	Charts  []ChartDescriptor `json:"charts"`
	Metrics *Metrics          `json:"metrics"`
}

// TrendsDocument reúne o conteúdo do relatório PDF de tendências
type TrendsDocument struct {
	StoreName       string
	Current         *Metrics
	AIReport        string
	Comparison      *Comparison
	AICompareReport string
}

// Filename segue o padrão tendencias_{from}_a_{to}.pdf
func (d TrendsDocument) Filename() string {
	return "tendencias_" + d.Current.Range.FromString() + "_a_" + d.Current.Range.ToString() + ".pdf"
}
