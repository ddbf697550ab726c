package narrating

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// Service implementa a interface Narrator
type Service struct {
	generator         TextGenerator
	temperature       float64
	maxConcurrentJobs int
}

// NewService cria uma nova instância do gerador de narrativas
func NewService(generator TextGenerator, cfg *config.Config) *Service {
	maxConcurrentJobs := cfg.Analysis.MaxConcurrentJobs
	if maxConcurrentJobs < 1 {
		maxConcurrentJobs = 1
	}

	return &Service{
		generator:         generator,
		temperature:       cfg.OpenAI.Temperature,
		maxConcurrentJobs: maxConcurrentJobs,
	}
}

// Explain gera uma justificativa para cada linha classificada. As requisições
// são independentes e executadas com concorrência limitada; o resultado é
// remontado pelo índice da linha, preservando a ordem de entrada.
//
// Falhas são isoladas por linha: a linha recebe "Error: <causa>" como
// explicação e as demais seguem normalmente. O cancelamento do contexto
// abandona as requisições em andamento sem corromper as já concluídas.
func (s *Service) Explain(ctx context.Context, records []domain.ScoredRecord) []domain.AnnotatedRecord {
	annotated := make([]domain.AnnotatedRecord, len(records))

	// Semáforo para limitar o número de requisições concorrentes
	semaphore := make(chan struct{}, s.maxConcurrentJobs)
	var wg sync.WaitGroup

	for i, record := range records {
		annotated[i].ScoredRecord = record

		// Se o contexto já foi cancelado, não iniciar novas requisições;
		// as linhas restantes recebem a string de erro
		if err := ctx.Err(); err != nil {
			annotated[i].Explanation = formatServiceError(err)
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(idx int, rec domain.ScoredRecord) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			annotated[idx].Explanation = s.explainRecord(ctx, rec)
		}(i, record)
	}

	wg.Wait()

	return annotated
}

// explainRecord gera a justificativa de uma única linha
func (s *Service) explainRecord(ctx context.Context, record domain.ScoredRecord) string {
	prompt := buildExplanationPrompt(record)

	text, err := s.generator.Generate(ctx, prompt, s.temperature)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": record.Platform,
			"action":   record.Action,
			"error":    err.Error(),
		}).Warn("narrating: explanation request failed, emitting inline error")

		return formatServiceError(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return formatServiceError(ErrEmptyGeneration)
	}

	return text
}

// AnswerQuestion serializa o dataset completo, envia a pergunta ao serviço de
// texto e retorna a resposta. O transcript da sessão é responsabilidade do
// caller; esta operação não guarda histórico.
func (s *Service) AnswerQuestion(ctx context.Context, dataset []domain.CampaignRecord, question string) string {
	prompt := buildQuestionPrompt(dataset, question)

	text, err := s.generator.Generate(ctx, prompt, s.temperature)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"question_length": len(question),
			"dataset_rows":    len(dataset),
			"error":           err.Error(),
		}).Warn("narrating: question request failed, emitting inline error")

		return formatServiceError(err)
	}

	return strings.TrimSpace(text)
}
