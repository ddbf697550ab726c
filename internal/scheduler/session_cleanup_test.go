package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/chatting/mocks"
	"go.uber.org/mock/gomock"
)

func cleanupConfig(enabled bool) *config.Config {
	return &config.Config{
		SessionCleanup: config.SessionCleanup{
			CronSchedule: "*/15 * * * *",
			IdleTTL:      time.Hour,
			Enabled:      enabled,
		},
	}
}

func TestSessionCleanupService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockSessionStore(ctrl)

	service := NewSessionCleanupService(mockStore, cleanupConfig(true))

	// A rodada de limpeza usa o TTL configurado
	mockStore.EXPECT().
		PruneIdleSessions(time.Hour).
		Return(2)

	service.Run()

	assert.False(t, service.lastRunAt.IsZero())
}

func TestSessionCleanupService_Run_NothingToRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockSessionStore(ctrl)

	service := NewSessionCleanupService(mockStore, cleanupConfig(true))

	mockStore.EXPECT().
		PruneIdleSessions(time.Hour).
		Return(0)

	service.Run()
}

func TestSessionCleanupService_RunGuardAgainstReentry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockSessionStore(ctrl)

	service := NewSessionCleanupService(mockStore, cleanupConfig(true))

	// Com a flag de execução marcada, a rodada é ignorada sem tocar no store
	service.cleanupRunning = true
	service.Run()
}
