package domain

import "time"

// ChatTurn é um par pergunta/resposta do transcript de uma sessão
type ChatTurn struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// ChatSession agrupa o dataset enviado e o histórico de perguntas sobre ele.
// A sessão vive apenas em memória durante o processo e é descartada quando
// encerrada ou quando fica ociosa por muito tempo.
type ChatSession struct {
	ID           string           `json:"id"`
	Dataset      []CampaignRecord `json:"-"`
	Transcript   []ChatTurn       `json:"transcript"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActivity time.Time        `json:"last_activity"`
}
