package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/dataset"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/narrating"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de tamanho do upload de CSV (4 MB)
const maxUploadBytes = 4 << 20

// AnalysisResponse é a resposta da análise de um lote de campanhas
type AnalysisResponse struct {
	Records   []domain.AnnotatedRecord `json:"records"`
	TotalRows int                      `json:"total_rows"`
	UsedRows  int                      `json:"used_rows"`
}

// AnalyzeCampaigns recebe um CSV de campanhas, aplica o limite de linhas
// configurado, classifica o lote e anexa as justificativas geradas
func AnalyzeCampaigns(decider deciding.Decider, narrator narrating.Narrator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, ok := readDatasetUpload(w, r)
		if !ok {
			return
		}

		totalRows := len(records)

		// O limite de linhas é uma política do caller, não do motor de decisão
		if limit := cfg.Analysis.RowLimit; limit > 0 && totalRows > limit {
			logger.WithFields(log.Fields{
				"total_rows": totalRows,
				"row_limit":  limit,
			}).Info("analysis: dataset truncated to configured row limit")
			records = records[:limit]
		}

		scored, err := decider.ScoreAndClassify(records)
		if err != nil {
			logger.WithFields(log.Fields{
				"rows":  len(records),
				"error": err.Error(),
			}).Warn("analysis: batch rejected by decision engine")

			writeDecisionError(w, err)
			return
		}

		annotated := narrator.Explain(r.Context(), scored)

		logger.WithFields(log.Fields{
			"total_rows": totalRows,
			"used_rows":  len(annotated),
		}).Info("analysis: batch analyzed successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AnalysisResponse{
			Records:   annotated,
			TotalRows: totalRows,
			UsedRows:  len(annotated),
		}); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// readDatasetUpload lê e valida o CSV enviado no campo "file" do formulário.
// Em caso de erro a resposta já foi escrita e o retorno é false.
func readDatasetUpload(w http.ResponseWriter, r *http.Request) ([]domain.CampaignRecord, bool) {
	logger := log.ForContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie o CSV no campo \"file\" de um formulário multipart", nil)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo \"file\" ausente no formulário", nil)
		return nil, false
	}
	defer file.Close()

	records, err := dataset.ParseCSV(file)
	if err != nil {
		logger.WithError(err).Warn("analysis: CSV upload rejected")
		writeDatasetError(w, err)
		return nil, false
	}

	return records, true
}

// writeDatasetError mapeia erros de importação de CSV para códigos da API
func writeDatasetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrMissingColumn):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumn, err.Error(), nil)
	case errors.Is(err, dataset.ErrEmptyFile):
		apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, err.Error(), nil)
	case errors.Is(err, dataset.ErrInvalidValue):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRow, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	}
}

// writeDecisionError mapeia erros do motor de decisão para códigos da API
func writeDecisionError(w http.ResponseWriter, err error) {
	var decisionErr *deciding.DecisionError
	if errors.As(err, &decisionErr) {
		details := map[string]any{}
		if decisionErr.Row >= 0 {
			details["row"] = decisionErr.Row
		}
		apiErrors.WriteError(w, decisionErr.Code, decisionErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
