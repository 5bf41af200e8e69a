package reporting

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

// promptJSON serializa sem espaços e sem escapar acentos ou símbolos
var promptJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const (
	expertSystemPrompt = "Eres un experto en analítica de retail."

	askSystemPrompt = "Eres analista de datos retail. Responde en español. " +
		"IMPORTANTE: Si generas un gráfico, devuélvelo SOLO en formato JSON estricto: {\"charts\": [...]}. " +
		"Para listar datos, usa listas de texto o tablas markdown, evita bloques JSON para datos."

	trendsInstruction = "Eres analista de datos retail de una tienda de muebles. " +
		"Con el JSON de métricas (compacto) redacta un informe MUY detallado en español, " +
		"claro y accionable, con secciones y bullets. Incluye:\n" +
		"- evolución/estacionalidad, anomalías y posibles causas\n" +
		"- ticket medio y palancas para mejorarlo\n" +
		"- productos estrella y productos con potencial\n" +
		"- oportunidades de cross-sell usando pares co-comprados\n" +
		"- lectura de RFM y acciones por segmento\n" +
		"- un plan de 5 acciones priorizadas (impacto/esfuerzo)"

	compareInstruction = "Eres analista de datos retail. Con el JSON de comparativa (compacto), " +
		"explica en español: qué sube/baja, posibles causas, y 3 acciones. Sé concreto."
)

func compactJSON(v any) (string, error) {
	return promptJSON.MarshalToString(v)
}

// TrendsMessages monta o pedido do relatório de tendências sem pergunta do usuário
func TrendsMessages(m *domain.Metrics) ([]domain.ChatMessage, error) {
	payload, err := compactJSON(Compact(m))
	if err != nil {
		return nil, err
	}

	user := fmt.Sprintf("Rango: %s\n%s\n\nMÉTRICAS JSON:\n%s", m.Range, trendsInstruction, payload)

	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: expertSystemPrompt},
		{Role: domain.RoleUser, Content: user},
	}, nil
}

func CompareMessages(c *domain.Comparison) ([]domain.ChatMessage, error) {
	payload, err := compactJSON(CompactComparisonOf(c))
	if err != nil {
		return nil, err
	}

	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: expertSystemPrompt},
		{Role: domain.RoleUser, Content: compareInstruction + "\n\nCOMPARATIVA JSON:\n" + payload},
	}, nil
}

func AskMessages(m *domain.Metrics, question string) ([]domain.ChatMessage, error) {
	payload, err := compactJSON(Compact(m))
	if err != nil {
		return nil, err
	}

	user := fmt.Sprintf("Rango: %s → %s\nPregunta: %s\n\nDATOS:\n%s",
		m.Range.FromString(), m.Range.ToString(), question, payload)

	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: askSystemPrompt},
		{Role: domain.RoleUser, Content: user},
	}, nil
}

// KPIContextMessage resume os KPIs do intervalo para o modo analytics do chat
func KPIContextMessage(m *domain.Metrics) domain.ChatMessage {
	avg := m.Averages

	var sb strings.Builder
	fmt.Fprintf(&sb, "Eres analista de datos retail de una tienda de muebles. Responde en español.\n")
	fmt.Fprintf(&sb, "KPIs del rango %s → %s:\n", m.Range.FromString(), m.Range.ToString())
	fmt.Fprintf(&sb, "- Ingresos: %s € en %d pedidos.\n", money(avg.Revenue), avg.Orders)
	fmt.Fprintf(&sb, "- Ticket medio (AOV): %s €; gasto medio por cliente: %s €.\n", money(avg.AOV), money(avg.AvgPerCustomer))
	fmt.Fprintf(&sb, "- Top productos: %s.\n", productList(m.TopProducts, 5))
	fmt.Fprintf(&sb, "- Segmentación RFM: %s.", segmentList(m.RFM.Summary))

	return domain.ChatMessage{Role: domain.RoleSystem, Content: sb.String()}
}
