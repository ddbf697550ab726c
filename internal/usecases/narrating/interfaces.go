package narrating

import (
	"context"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// TextGenerator define a capacidade mínima exigida do serviço externo de
// geração de texto. Os testes substituem a implementação real por um mock.
type TextGenerator interface {
	// Generate envia o prompt ao serviço e retorna o texto da resposta
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Narrator define a interface do gerador de justificativas e respostas
type Narrator interface {
	// Explain gera uma justificativa textual para cada linha classificada
	Explain(ctx context.Context, records []domain.ScoredRecord) []domain.AnnotatedRecord

	// AnswerQuestion responde uma pergunta livre sobre o dataset completo
	AnswerQuestion(ctx context.Context, dataset []domain.CampaignRecord, question string) string
}
