package domain

// Message é uma mensagem do endpoint de chat completions
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest é o corpo da requisição de chat completions
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// ChatCompletionResponse é o corpo da resposta de chat completions
type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
	Error   *APIErr  `json:"error,omitempty"`
}

// Choice é uma alternativa de resposta retornada pelo modelo
type Choice struct {
	Message Message `json:"message"`
}

// APIErr é o envelope de erro retornado pela API da OpenAI
type APIErr struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}
