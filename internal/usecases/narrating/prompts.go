package narrating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// buildExplanationPrompt monta o prompt de justificativa de uma linha
// classificada, incorporando plataforma, audiência, dispositivo, ROI
// arredondado e a ação escolhida
func buildExplanationPrompt(record domain.ScoredRecord) string {
	return fmt.Sprintf(
		"You're an AI ad strategist. A campaign on %s targeting %s users on %s has an ROI of %.2f. "+
			"You chose to %s the budget. Briefly explain why.",
		record.Platform,
		record.AudienceType,
		record.DeviceType,
		record.ROI,
		record.Action,
	)
}

// buildQuestionPrompt monta o prompt de pergunta livre, serializando o dataset
// completo em formato tabular e instruindo o modelo a responder apenas com
// base nos dados fornecidos
func buildQuestionPrompt(dataset []domain.CampaignRecord, question string) string {
	var sb strings.Builder

	sb.WriteString("You are a marketing analyst AI. Here's campaign data:\n\n")
	sb.WriteString(serializeDataset(dataset))
	sb.WriteString("\nAnswer this question based on the data:\n")
	sb.WriteString(question)
	sb.WriteString("\n")

	return sb.String()
}

// serializeDataset converte o dataset em uma tabela CSV textual, no mesmo
// layout de colunas do arquivo de entrada
func serializeDataset(dataset []domain.CampaignRecord) string {
	var sb strings.Builder

	sb.WriteString("Platform,Device Type,Audience Type,Spend ($),Conversions\n")
	for _, record := range dataset {
		sb.WriteString(record.Platform)
		sb.WriteString(",")
		sb.WriteString(record.DeviceType)
		sb.WriteString(",")
		sb.WriteString(record.AudienceType)
		sb.WriteString(",")
		sb.WriteString(strconv.FormatFloat(record.Spend, 'f', -1, 64))
		sb.WriteString(",")
		sb.WriteString(strconv.Itoa(record.Conversions))
		sb.WriteString("\n")
	}

	return sb.String()
}
