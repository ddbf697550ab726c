package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/chatting"
)

// SessionCleanupConfig representa a configuração do agendador de limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule string
	IdleTTL      time.Duration
	Enabled      bool
}

// SessionCleanupService gerencia o agendamento da remoção de sessões ociosas
type SessionCleanupService struct {
	scheduler      *gocron.Scheduler
	config         SessionCleanupConfig
	sessions       chatting.SessionStore
	cleanupRunning bool
	cleanupMutex   sync.Mutex
	lastRunAt      time.Time
}

// NewSessionCleanupService cria uma nova instância do serviço de limpeza de sessões
func NewSessionCleanupService(sessions chatting.SessionStore, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.SessionCleanup.CronSchedule,
		IdleTTL:      appConfig.SessionCleanup.IdleTTL,
		Enabled:      appConfig.SessionCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"idle_ttl":      cleanupConfig.IdleTTL.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler: scheduler,
		config:    cleanupConfig,
		sessions:  sessions,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma rodada de limpeza das sessões ociosas
func (s *SessionCleanupService) Run() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	startTime := time.Now()
	removed := s.sessions.PruneIdleSessions(s.config.IdleTTL)
	s.lastRunAt = startTime

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":  removed,
			"idle_ttl": s.config.IdleTTL.String(),
			"duration": time.Since(startTime).String(),
		}).Info("Sessões ociosas removidas")
	} else {
		logrus.Debug("Nenhuma sessão ociosa para remover")
	}
}
