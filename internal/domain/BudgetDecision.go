package domain

// Action é a recomendação de orçamento para uma linha de campanha
type Action string

const (
	ActionDecrease Action = "decrease"
	ActionIncrease Action = "increase"
	ActionMaintain Action = "maintain"
)

// ScoredRecord é o resultado do motor de decisão para uma linha de campanha.
// O ROI exibido é arredondado para duas casas decimais; a classificação é
// feita sobre o valor sem arredondamento.
type ScoredRecord struct {
	Platform     string  `json:"platform"`
	DeviceType   string  `json:"device_type"`
	AudienceType string  `json:"audience_type"`
	Spend        float64 `json:"spend"`
	ROI          float64 `json:"roi"`
	Action       Action  `json:"action"`
}

// AnnotatedRecord é um ScoredRecord acompanhado da justificativa gerada
// pelo serviço de texto. Em caso de falha na geração, Explanation recebe
// a string de erro no formato "Error: <causa>".
type AnnotatedRecord struct {
	ScoredRecord
	Explanation string `json:"explanation"`
}
