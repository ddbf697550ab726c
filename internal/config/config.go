package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	Analysis       Analysis       `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type OpenAI struct {
	BaseURL        string        `mapstructure:"openai_base_url"`
	APIKey         string        `mapstructure:"openai_api_key"`
	Model          string        `mapstructure:"openai_model"`
	Temperature    float64       `mapstructure:"openai_temperature"`
	RequestTimeout time.Duration `mapstructure:"openai_request_timeout"`
}

type Analysis struct {
	// RowLimit limita quantas linhas do CSV entram na análise. É uma política
	// do caller, não do motor de decisão, e por isso fica configurável aqui.
	RowLimit          int    `mapstructure:"analysis_row_limit"`
	SpendPolicy       string `mapstructure:"analysis_spend_policy"`
	MaxConcurrentJobs int    `mapstructure:"analysis_max_concurrent_jobs"`
}

type SessionCleanup struct {
	CronSchedule string        `mapstructure:"session_cleanup_cron"`
	IdleTTL      time.Duration `mapstructure:"session_idle_ttl"`
	Enabled      bool          `mapstructure:"session_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.5)
	viper.SetDefault("OPENAI_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("ANALYSIS_ROW_LIMIT", 10)          // Quantidade de linhas do CSV consideradas na análise
	viper.SetDefault("ANALYSIS_SPEND_POLICY", "reject") // "reject" rejeita o lote; "skip" pula a linha
	viper.SetDefault("ANALYSIS_MAX_CONCURRENT_JOBS", 3) // 3 requisições de explicação concorrentes

	viper.SetDefault("SESSION_CLEANUP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SESSION_IDLE_TTL", "1h")
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile carrega o arquivo .env se ele existir no diretório atual
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	envPath := filepath.Join(cwd, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		logrus.Warn("Erro ao carregar o arquivo .env:", err)
	}
}
