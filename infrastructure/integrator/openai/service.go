package openai

import (
	"context"
	"errors"

	openaidomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
)

var ErrNoChoices = errors.New("openai response has no choices")

// OpenAIIntegrator implementa narrating.TextGenerator sobre o endpoint de
// chat completions
type OpenAIIntegrator struct {
	cfg    *config.Config
	client openaiclient.Client
}

// New cria uma nova instância do integrador da OpenAI
func New(cfg *config.Config, client openaiclient.Client) *OpenAIIntegrator {
	return &OpenAIIntegrator{
		cfg:    cfg,
		client: client,
	}
}

// Generate envia o prompt como uma única mensagem de usuário e retorna o
// conteúdo da primeira alternativa de resposta
func (i *OpenAIIntegrator) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	req := openaidomain.ChatCompletionRequest{
		Model: i.cfg.OpenAI.Model,
		Messages: []openaidomain.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
	}

	resp, err := i.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
