package deciding

import (
	"fmt"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

// Limiares de classificação relativos à média de ROI do lote. A comparação é
// estritamente menor/maior: empates exatos no limiar resultam em "maintain".
const (
	decreaseThreshold = 0.75
	increaseThreshold = 1.25
)

// SpendPolicy define o que fazer com linhas de investimento inválido (<= 0)
type SpendPolicy string

const (
	// SpendPolicyRejectBatch rejeita o lote inteiro na primeira linha inválida
	SpendPolicyRejectBatch SpendPolicy = "reject"
	// SpendPolicySkipRow descarta a linha inválida e processa o restante
	SpendPolicySkipRow SpendPolicy = "skip"
)

// ParseSpendPolicy converte o valor de configuração em uma SpendPolicy
func ParseSpendPolicy(value string) (SpendPolicy, error) {
	switch SpendPolicy(value) {
	case SpendPolicyRejectBatch:
		return SpendPolicyRejectBatch, nil
	case SpendPolicySkipRow:
		return SpendPolicySkipRow, nil
	}
	return "", NewDecisionError(ErrUnknownSpendPolicy, apiErrors.ErrInvalidRequest, value)
}

// Decider define a interface do motor de decisão de orçamento
type Decider interface {
	// ScoreAndClassify calcula o ROI de cada linha e classifica a ação de
	// orçamento relativa à média do lote
	ScoreAndClassify(records []domain.CampaignRecord) ([]domain.ScoredRecord, error)
}

// Service implementa a interface Decider. O serviço é determinístico e não
// guarda estado entre chamadas.
type Service struct {
	spendPolicy SpendPolicy
}

// NewService cria uma nova instância do motor de decisão
func NewService(spendPolicy SpendPolicy) *Service {
	return &Service{spendPolicy: spendPolicy}
}

// ScoreAndClassify calcula o ROI (conversions * 100 / spend) de cada linha,
// a média do lote, e classifica cada linha comparando o ROI sem arredondamento
// com a média. O ROI exibido é arredondado para duas casas decimais.
//
// A classificação depende da média do lote inteiro, então o cálculo é feito em
// duas passadas: primeiro todos os ROIs e a média, depois a classificação.
func (s *Service) ScoreAndClassify(records []domain.CampaignRecord) ([]domain.ScoredRecord, error) {
	if len(records) == 0 {
		return nil, NewDecisionError(ErrEmptyBatch, apiErrors.ErrEmptyDataset, "")
	}

	// Primeira passada: ROI por linha e soma para a média
	type rowROI struct {
		record domain.CampaignRecord
		roi    float64
	}

	rows := make([]rowROI, 0, len(records))
	sum := 0.0

	for i, record := range records {
		if !record.HasValidSpend() {
			if s.spendPolicy == SpendPolicySkipRow {
				continue
			}
			return nil, NewRowDecisionError(
				ErrInvalidSpend,
				apiErrors.ErrInvalidSpend,
				i,
				fmt.Sprintf("platform=%s spend=%.2f", record.Platform, record.Spend),
			)
		}

		roi := float64(record.Conversions) * 100 / record.Spend
		rows = append(rows, rowROI{record: record, roi: roi})
		sum += roi
	}

	// Com a política de skip, todas as linhas podem ter sido descartadas
	if len(rows) == 0 {
		return nil, NewDecisionError(ErrEmptyBatch, apiErrors.ErrEmptyDataset, "all rows skipped by spend policy")
	}

	meanROI := sum / float64(len(rows))

	// Segunda passada: classificação relativa à média
	scored := make([]domain.ScoredRecord, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, domain.ScoredRecord{
			Platform:     row.record.Platform,
			DeviceType:   row.record.DeviceType,
			AudienceType: row.record.AudienceType,
			Spend:        row.record.Spend,
			ROI:          utils.RoundWithTwoDecimalPlace(row.roi),
			Action:       classify(row.roi, meanROI),
		})
	}

	return scored, nil
}

// classify compara o ROI sem arredondamento com a média do lote. Os limiares
// são abertos: valores exatamente no limiar caem em "maintain".
func classify(roi, meanROI float64) domain.Action {
	switch {
	case roi < decreaseThreshold*meanROI:
		return domain.ActionDecrease
	case roi > increaseThreshold*meanROI:
		return domain.ActionIncrease
	default:
		return domain.ActionMaintain
	}
}
