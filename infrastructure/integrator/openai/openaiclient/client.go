package openaiclient

import (
	"context"
	"net/http"
	"time"

	openaidomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
)

type Client interface {
	CreateChatCompletion(ctx context.Context, req openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API da OpenAI. O timeout da
// requisição vem da configuração.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.OpenAI.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
