package openaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	openaidomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CreateChatCompletion envia uma requisição de chat completions e retorna a
// resposta decodificada. Erros de transporte e de serviço são retornados ao
// caller; a recuperação por linha é responsabilidade do usecase.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, req openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal chat completion request")
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.OpenAI.BaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chat completion request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("openai: chat completion request failed")
		return nil, errors.Wrap(err, "chat completion request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chat completion response")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"model":       req.Model,
		}).Error("openai: chat completion returned non-200 status")

		return nil, fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var response openaidomain.ChatCompletionResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal chat completion response")
	}

	if response.Error != nil {
		return nil, fmt.Errorf("openai API error: %s", response.Error.Message)
	}

	return &response, nil
}
