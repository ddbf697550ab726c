package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/chatting"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/narrating"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
)

// CreateSessionResponse é a resposta da criação de uma sessão de chat
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Rows      int    `json:"rows"`
}

// AskQuestionRequest é o corpo da pergunta sobre o dataset da sessão
type AskQuestionRequest struct {
	Question string `json:"question"`
}

// TranscriptResponse é o transcript ordenado de uma sessão
type TranscriptResponse struct {
	SessionID  string            `json:"session_id"`
	Transcript []domain.ChatTurn `json:"transcript"`
}

// CreateSession recebe um CSV de campanhas e abre uma sessão de chat sobre ele
func CreateSession(sessions chatting.SessionStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, ok := readDatasetUpload(w, r)
		if !ok {
			return
		}

		session, err := sessions.CreateSession(records)
		if err != nil {
			logger.WithError(err).Error("sessions: failed to create session")
			if errors.Is(err, chatting.ErrEmptyDataset) {
				apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"session_id": session.ID,
			"rows":       len(session.Dataset),
		}).Info("sessions: session created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateSessionResponse{
			SessionID: session.ID,
			Rows:      len(session.Dataset),
		})
	})
}

// AskQuestion responde uma pergunta livre sobre o dataset da sessão e anexa o
// par pergunta/resposta ao transcript
func AskQuestion(sessions chatting.SessionStore, narrator narrating.Narrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req AskQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		question := strings.TrimSpace(req.Question)
		if question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pergunta não informada", nil)
			return
		}

		session, err := sessions.GetSession(id)
		if err != nil {
			writeSessionError(w, id, err)
			return
		}

		logger.WithFields(log.Fields{
			"session_id":      id,
			"question_length": len(question),
		}).Info("sessions: answering question about dataset")

		// A resposta pode ser a string "Error: <causa>" quando o serviço de
		// texto falha; ela entra no transcript do mesmo jeito
		answer := narrator.AnswerQuestion(r.Context(), session.Dataset, question)

		turn, err := sessions.AppendTurn(id, question, answer)
		if err != nil {
			writeSessionError(w, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(turn)
	})
}

// GetTranscript retorna o transcript ordenado da sessão
func GetTranscript(sessions chatting.SessionStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := sessions.GetSession(id)
		if err != nil {
			writeSessionError(w, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TranscriptResponse{
			SessionID:  session.ID,
			Transcript: session.Transcript,
		})
	})
}

// EndSession encerra a sessão e descarta o transcript
func EndSession(sessions chatting.SessionStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := sessions.EndSession(id); err != nil {
			writeSessionError(w, id, err)
			return
		}

		logger.WithField("session_id", id).Info("sessions: session ended")
		w.WriteHeader(http.StatusNoContent)
	})
}

// writeSessionError mapeia erros de sessão para códigos da API
func writeSessionError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, chatting.ErrSessionNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", map[string]string{"session_id": id})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
