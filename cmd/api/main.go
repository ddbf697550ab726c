package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/campaign-advisor-api/internal/api"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/scheduler"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/chatting"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/narrating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if cfg.OpenAI.APIKey == "" {
		logrus.Warn("OPENAI_API_KEY não configurada; explicações e respostas retornarão erro inline")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	spendPolicy, err := deciding.ParseSpendPolicy(cfg.Analysis.SpendPolicy)
	if err != nil {
		logrus.Fatal(err)
	}

	decisionService := deciding.NewService(spendPolicy)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(cfg, openaiClient)

	narratingService := narrating.NewService(openaiIntegrator, cfg)

	sessionStore := chatting.NewService()

	// Inicializa o agendador de limpeza de sessões ociosas
	sessionCleanupService := scheduler.NewSessionCleanupService(sessionStore, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		decisionService,
		narratingService,
		sessionStore,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
