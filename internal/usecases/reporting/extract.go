package reporting

import (
	"io"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
)

var (
	chartsStart = regexp.MustCompile(`\{\s*"charts"\s*:\s*\[`)
	chartsEnd   = regexp.MustCompile(`\]\s*\}`)
	jsonFence   = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	blankLines  = regexp.MustCompile(`\n\s*\n`)
)

const (
	fence       = "```"
	jsonFenceOp = "```json"
)

// skippedDataKeys não aparecem na renderização de blocos de dados
var skippedDataKeys = map[string]bool{"product_id": true}

// Repair separa a resposta do provedor em texto narrativo e gráficos.
// Payloads {"charts":[...]} (soltos ou dentro de ```json) são extraídos, os demais
// blocos ```json viram listas markdown e linhas em branco repetidas são colapsadas.
func Repair(raw string) (string, []domain.ChartDescriptor) {
	charts := make([]domain.ChartDescriptor, 0)

	text := raw
	offset := 0
	for offset < len(text) {
		loc := chartsStart.FindStringIndex(text[offset:])
		if loc == nil {
			break
		}
		start := offset + loc[0]

		end, entries, ok := matchChartsPayload(text, start)
		if !ok {
			offset = start + 1
			continue
		}
		charts = append(charts, toCharts(entries)...)

		from, to := widenToFence(text, start, end)
		text = text[:from] + text[to:]
		offset = from
	}

	text = jsonFence.ReplaceAllStringFunc(text, func(block string) string {
		content := jsonFence.FindStringSubmatch(block)[1]

		if entries, ok := parseChartsPayload(content); ok {
			charts = append(charts, toCharts(entries)...)
			return ""
		}

		if rendered, ok := renderDataBlock(content); ok {
			return rendered
		}

		return block
	})

	text = blankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), charts
}

// matchChartsPayload tenta cada fechamento "]}" a partir de start até que o trecho seja JSON válido
func matchChartsPayload(text string, start int) (int, []any, bool) {
	for _, loc := range chartsEnd.FindAllStringIndex(text[start:], -1) {
		end := start + loc[1]
		if entries, ok := parseChartsPayload(text[start:end]); ok {
			return end, entries, true
		}
	}
	return 0, nil, false
}

func parseChartsPayload(content string) ([]any, bool) {
	var payload map[string]any
	if err := json.UnmarshalFromString(content, &payload); err != nil {
		return nil, false
	}

	entries, ok := payload["charts"].([]any)
	return entries, ok
}

// widenToFence inclui as marcas ``` que envolvem o payload quando ele é o conteúdo inteiro
// de um único bloco: a marca anterior precisa abrir um bloco e a seguinte precisa ser um
// fechamento puro, seguido de quebra de linha ou do fim do texto.
func widenToFence(text string, start, end int) (int, int) {
	before := strings.TrimRight(text[:start], " \t\r\n")
	after := strings.TrimLeft(text[end:], " \t\r\n")

	var opening int
	switch {
	case strings.HasSuffix(before, jsonFenceOp):
		opening = len(before) - len(jsonFenceOp)
	case strings.HasSuffix(before, fence):
		opening = len(before) - len(fence)
	default:
		return start, end
	}

	// número ímpar de marcas antes indica que esta fecha um bloco anterior
	if strings.Count(text[:opening], fence)%2 != 0 {
		return start, end
	}

	if !strings.HasPrefix(after, fence) {
		return start, end
	}

	closing := len(text) - len(after) + len(fence)
	rest := strings.TrimLeft(text[closing:], " \t\r")
	if rest != "" && rest[0] != '\n' {
		return start, end
	}

	return opening, closing
}

func toCharts(entries []any) []domain.ChartDescriptor {
	charts := make([]domain.ChartDescriptor, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		var chart domain.ChartDescriptor
		if err := mapstructure.Decode(obj, &chart); err != nil {
			continue
		}
		if chart.Type != domain.ChartLine {
			chart.Type = domain.ChartBar
		}
		if chart.Data == nil {
			chart.Data = []any{}
		}

		charts = append(charts, chart)
	}
	return charts
}

// renderDataBlock converte listas e objetos JSON em markdown preservando a ordem das chaves.
// Escalares e JSON inválido não são convertidos.
func renderDataBlock(content string) (string, bool) {
	// UnmarshalFromString rejeita conteúdo após o primeiro valor
	var parsed any
	if err := json.UnmarshalFromString(content, &parsed); err != nil {
		return "", false
	}

	iter := jsoniter.ParseString(json, content)
	var lines []string

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			if it.WhatIsNext() != jsoniter.ObjectValue {
				lines = append(lines, "- "+readValue(it))
				return true
			}

			var parts []string
			it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
				value := readValue(it)
				if !skippedDataKeys[key] {
					parts = append(parts, key+": "+value)
				}
				return true
			})
			lines = append(lines, "- "+strings.Join(parts, ", "))
			return true
		})
	case jsoniter.ObjectValue:
		iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			lines = append(lines, "- **"+key+"**: "+readValue(it))
			return true
		})
	default:
		return "", false
	}

	if iter.Error != nil && iter.Error != io.EOF {
		return "", false
	}

	return "\n" + strings.Join(lines, "\n") + "\n", true
}

// readValue devolve strings sem aspas e os demais valores como foram escritos
func readValue(it *jsoniter.Iterator) string {
	switch it.WhatIsNext() {
	case jsoniter.StringValue:
		return it.ReadString()
	case jsoniter.NilValue:
		it.ReadNil()
		return "null"
	default:
		return strings.TrimSpace(string(it.SkipAndReturnBytes()))
	}
}
