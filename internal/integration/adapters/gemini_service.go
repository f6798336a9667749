package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fincontrol/backend/internal/application/adapter"
)

// GeminiService implements the adapter.AlertService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateAlerts analyzes the KPI snapshot and returns advisory alerts.
func (s *GeminiService) GenerateAlerts(ctx context.Context, request adapter.AlertRequest) ([]*adapter.Alert, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	alerts, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return alerts, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request adapter.AlertRequest) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um consultor financeiro pessoal. Sua tarefa e analisar os indicadores financeiros de um usuario e gerar alertas curtos e acionaveis.

IMPORTANTE - IDIOMA:
- Todas as respostas devem ser em Portugues Brasileiro
- Alertas devem ser diretos, no maximo duas frases cada

REGRAS:
- Gere no maximo 3 alertas, apenas os mais relevantes
- Severidade: "info" para observacoes, "atencao" para tendencias preocupantes, "critico" para saldo negativo ou gastos fora de controle
- Nao repita o mesmo numero em titulo e mensagem
- Se os indicadores estiverem saudaveis, retorne um unico alerta "info" positivo

INDICADORES DO USUARIO`)

	if request.UserName != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", request.UserName))
	}
	sb.WriteString(":\n")

	if request.KPIs != nil {
		kpis := request.KPIs
		sb.WriteString(fmt.Sprintf("- Saldo: %s\n", kpis.Balance))
		sb.WriteString(fmt.Sprintf("- Total de entradas: %s\n", kpis.TotalInflow))
		sb.WriteString(fmt.Sprintf("- Total de saidas: %s\n", kpis.TotalOutflow))
		sb.WriteString(fmt.Sprintf("- Lucro liquido: %s\n", kpis.NetProfit))
		sb.WriteString(fmt.Sprintf("- Margem liquida: %s%%\n", kpis.NetMargin))
		sb.WriteString(fmt.Sprintf("- Media mensal de saidas: %s\n", kpis.MonthlyMean))
		sb.WriteString(fmt.Sprintf("- Variacao de saidas vs periodo anterior: %s%%\n", kpis.MonthlyVariation))
	}

	if len(request.TopCategories) > 0 {
		sb.WriteString("\nMAIORES CATEGORIAS DE GASTO:\n")
		for _, share := range request.TopCategories {
			sb.WriteString(fmt.Sprintf("- %s: %s (%s%%)\n", share.Category, share.Amount, share.Percentage))
		}
	}

	sb.WriteString(`
Responda com um array JSON de alertas. Cada alerta deve ter:
{
  "severidade": "info" | "atencao" | "critico",
  "titulo": "titulo curto em Portugues",
  "mensagem": "mensagem em Portugues, no maximo duas frases"
}

FORMATO DE RESPOSTA: Retorne apenas o array JSON, sem texto adicional.
`)

	return sb.String()
}

// parseResponse parses the Gemini response into alerts.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.Alert, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var alerts []*adapter.Alert
	if err := json.Unmarshal([]byte(textContent), &alerts); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	valid := make([]*adapter.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert == nil || alert.Message == "" {
			continue
		}
		switch alert.Severity {
		case "info", "atencao", "critico":
		default:
			alert.Severity = "info"
		}
		valid = append(valid, alert)
	}

	return valid, nil
}
