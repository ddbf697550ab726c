package chatting

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

// SessionStore define a interface do armazenamento de sessões de chat
type SessionStore interface {
	// CreateSession registra um novo dataset e retorna a sessão criada
	CreateSession(dataset []domain.CampaignRecord) (*domain.ChatSession, error)

	// GetSession retorna a sessão pelo ID
	GetSession(id string) (*domain.ChatSession, error)

	// AppendTurn adiciona um par pergunta/resposta ao transcript da sessão
	AppendTurn(id string, question, answer string) (domain.ChatTurn, error)

	// EndSession descarta a sessão e seu transcript
	EndSession(id string) error

	// PruneIdleSessions descarta sessões ociosas há mais tempo que o TTL e
	// retorna quantas foram removidas
	PruneIdleSessions(idleTTL time.Duration) int
}

// Service implementa SessionStore em memória. As sessões vivem apenas durante
// o processo; não há persistência.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*domain.ChatSession
	now      func() time.Time
}

// NewService cria um novo armazenamento de sessões em memória
func NewService() *Service {
	return &Service{
		sessions: make(map[string]*domain.ChatSession),
		now:      time.Now,
	}
}

// CreateSession registra um novo dataset com transcript vazio
func (s *Service) CreateSession(dataset []domain.CampaignRecord) (*domain.ChatSession, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	now := s.now()
	session := &domain.ChatSession{
		ID:           id,
		Dataset:      dataset,
		Transcript:   []domain.ChatTurn{},
		CreatedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return snapshot(session), nil
}

// GetSession retorna uma cópia da sessão pelo ID
func (s *Service) GetSession(id string) (*domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return snapshot(session), nil
}

// AppendTurn adiciona um par pergunta/resposta ao transcript, que é
// estritamente append-only
func (s *Service) AppendTurn(id string, question, answer string) (domain.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return domain.ChatTurn{}, ErrSessionNotFound
	}

	turn := domain.ChatTurn{
		Question: question,
		Answer:   answer,
		AskedAt:  s.now(),
	}

	session.Transcript = append(session.Transcript, turn)
	session.LastActivity = turn.AskedAt

	return turn, nil
}

// EndSession descarta a sessão e seu transcript
func (s *Service) EndSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(s.sessions, id)
	return nil
}

// PruneIdleSessions remove sessões sem atividade há mais tempo que idleTTL
func (s *Service) PruneIdleSessions(idleTTL time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idleTTL)
	removed := 0

	for id, session := range s.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

// snapshot devolve uma cópia da sessão para evitar que callers alterem o
// estado interno do armazenamento
func snapshot(session *domain.ChatSession) *domain.ChatSession {
	copied := *session
	copied.Dataset = append([]domain.CampaignRecord(nil), session.Dataset...)
	copied.Transcript = append([]domain.ChatTurn(nil), session.Transcript...)
	return &copied
}
