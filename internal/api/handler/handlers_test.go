package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-advisor-api/internal/api/handler"
	"github.com/vfg2006/campaign-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/chatting"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/deciding"
	narratingmocks "github.com/vfg2006/campaign-advisor-api/internal/usecases/narrating/mocks"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const sampleCSV = "Platform,Device Type,Audience Type,Spend ($),Conversions\n" +
	"Meta,Mobile,Lookalike,100,10\n" +
	"Google Ads,Desktop,Retargeting,100,50\n" +
	"TikTok,Mobile,Broad,100,10\n"

func multipartCSV(t *testing.T, csvContent string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "campaigns.csv")
	require.NoError(t, err)

	_, err = part.Write([]byte(csvContent))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func analysisConfig(rowLimit int) *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			RowLimit:          rowLimit,
			MaxConcurrentJobs: 2,
		},
	}
}

func TestAnalyzeCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	decider := deciding.NewService(deciding.SpendPolicyRejectBatch)
	cfg := analysisConfig(10)

	narrator.EXPECT().
		Explain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.ScoredRecord) []domain.AnnotatedRecord {
			annotated := make([]domain.AnnotatedRecord, len(records))
			for i, rec := range records {
				annotated[i] = domain.AnnotatedRecord{ScoredRecord: rec, Explanation: "because"}
			}
			return annotated
		})

	rt := router.New(router.WithRoutes(handler.Campaigns(decider, narrator, cfg)...))

	body, contentType := multipartCSV(t, sampleCSV)
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.AnalysisResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	require.Len(t, resp.Records, 3)
	assert.Equal(t, 3, resp.TotalRows)
	assert.Equal(t, 3, resp.UsedRows)

	// A ordem do CSV é preservada na resposta
	assert.Equal(t, "Meta", resp.Records[0].Platform)
	assert.Equal(t, domain.ActionDecrease, resp.Records[0].Action)
	assert.Equal(t, domain.ActionIncrease, resp.Records[1].Action)
	assert.Equal(t, "because", resp.Records[2].Explanation)
}

func TestAnalyzeCampaigns_RowLimitIsCallerPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	decider := deciding.NewService(deciding.SpendPolicyRejectBatch)
	cfg := analysisConfig(2)

	narrator.EXPECT().
		Explain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.ScoredRecord) []domain.AnnotatedRecord {
			// O motor de decisão só recebe as linhas dentro do limite
			require.Len(t, records, 2)
			annotated := make([]domain.AnnotatedRecord, len(records))
			for i, rec := range records {
				annotated[i] = domain.AnnotatedRecord{ScoredRecord: rec, Explanation: "ok"}
			}
			return annotated
		})

	rt := router.New(router.WithRoutes(handler.Campaigns(decider, narrator, cfg)...))

	body, contentType := multipartCSV(t, sampleCSV)
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.AnalysisResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.TotalRows)
	assert.Equal(t, 2, resp.UsedRows)
}

func TestAnalyzeCampaigns_MissingColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	decider := deciding.NewService(deciding.SpendPolicyRejectBatch)

	rt := router.New(router.WithRoutes(handler.Campaigns(decider, narrator, analysisConfig(10))...))

	csvContent := "Platform,Device Type,Audience Type,Conversions\nMeta,Mobile,Lookalike,10\n"
	body, contentType := multipartCSV(t, csvContent)
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrMissingColumn, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Spend ($)")
}

func TestAnalyzeCampaigns_InvalidSpendRejectsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	decider := deciding.NewService(deciding.SpendPolicyRejectBatch)

	rt := router.New(router.WithRoutes(handler.Campaigns(decider, narrator, analysisConfig(10))...))

	csvContent := "Platform,Device Type,Audience Type,Spend ($),Conversions\n" +
		"Meta,Mobile,Lookalike,0,10\n"
	body, contentType := multipartCSV(t, csvContent)
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidSpend, apiErr.Code)
}

func TestAnalyzeCampaigns_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	decider := deciding.NewService(deciding.SpendPolicyRejectBatch)

	rt := router.New(router.WithRoutes(handler.Campaigns(decider, narrator, analysisConfig(10))...))

	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/analysis", strings.NewReader("not a form"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	sessions := chatting.NewService()

	rt := router.New(router.WithRoutes(handler.Sessions(sessions, narrator)...))

	// Criar a sessão com o upload do CSV
	body, contentType := multipartCSV(t, sampleCSV)
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created handler.CreateSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, 3, created.Rows)

	// Perguntar sobre o dataset
	narrator.EXPECT().
		AnswerQuestion(gomock.Any(), gomock.Any(), "Which platform is best?").
		Return("Google Ads has the highest ROI.")

	questionBody := bytes.NewBufferString(`{"question": "Which platform is best?"}`)
	req = httptest.NewRequest(http.MethodPost, "/v1/sessions/"+created.SessionID+"/questions", questionBody)
	rec = httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var turn domain.ChatTurn
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&turn))
	assert.Equal(t, "Which platform is best?", turn.Question)
	assert.Equal(t, "Google Ads has the highest ROI.", turn.Answer)

	// O transcript guarda o par pergunta/resposta na ordem
	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/"+created.SessionID+"/transcript", nil)
	rec = httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var transcript handler.TranscriptResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&transcript))
	require.Len(t, transcript.Transcript, 1)
	assert.Equal(t, "Which platform is best?", transcript.Transcript[0].Question)

	// Encerrar a sessão descarta o transcript
	req = httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+created.SessionID, nil)
	rec = httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/"+created.SessionID+"/transcript", nil)
	rec = httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAskQuestion_EmptyQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	sessions := chatting.NewService()

	rt := router.New(router.WithRoutes(handler.Sessions(sessions, narrator)...))

	body := bytes.NewBufferString(`{"question": "   "}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/whatever/questions", body)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskQuestion_UnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrator := narratingmocks.NewMockNarrator(ctrl)
	sessions := chatting.NewService()

	rt := router.New(router.WithRoutes(handler.Sessions(sessions, narrator)...))

	body := bytes.NewBufferString(`{"question": "anything?"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/missing/questions", body)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrSessionNotFound, apiErr.Code)
}
