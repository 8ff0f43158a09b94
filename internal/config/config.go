package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Render           Render           `mapstructure:",squash"`
	Serp             Serp             `mapstructure:",squash"`
	RankCheck        RankCheck        `mapstructure:",squash"`
	RankTrackingSync RankTrackingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Render struct {
	BaseURL   string `mapstructure:"render_base_url"`
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

// Serp reúne credenciais e limites dos provedores de SERP
type Serp struct {
	Provider              string  `mapstructure:"serp_provider"` // incremental, bulk ou vazio (automático)
	BulkURL               string  `mapstructure:"serp_bulk_url"`
	BulkAPIKey            string  `mapstructure:"serp_bulk_api_key"`
	BulkCostPerPage       float64 `mapstructure:"serp_bulk_cost_per_page"`
	IncrementalURL        string  `mapstructure:"serp_incremental_url"`
	IncrementalLogin      string  `mapstructure:"serp_incremental_login"`
	IncrementalPassword   string  `mapstructure:"serp_incremental_password"`
	IncrementalCost       float64 `mapstructure:"serp_incremental_cost_per_request"`
	LanguageCode          string  `mapstructure:"serp_language_code"`
	RequestTimeoutSeconds int     `mapstructure:"serp_request_timeout_seconds"`
	GlobalMinIntervalMs   int     `mapstructure:"serp_global_min_interval_ms"`
	CallerMinIntervalMs   int     `mapstructure:"serp_caller_min_interval_ms"`
	LocationsFile         string  `mapstructure:"serp_locations_file"`
}

// HasBulkCredentials indica se o provedor de páginas em lote está configurado
func (s Serp) HasBulkCredentials() bool {
	return s.BulkAPIKey != ""
}

// HasIncrementalCredentials indica se o provedor incremental está configurado
func (s Serp) HasIncrementalCredentials() bool {
	return s.IncrementalLogin != "" && s.IncrementalPassword != ""
}

// RankCheck controla a busca progressiva e o processamento em lote
type RankCheck struct {
	DepthTiers                  []int   `mapstructure:"rank_check_depth_tiers"`
	MaxDepth                    int     `mapstructure:"rank_check_max_depth"`
	PacingDelaySeconds          int     `mapstructure:"rank_check_pacing_delay_seconds"`
	LongBatchPacingDelaySeconds int     `mapstructure:"rank_check_long_batch_pacing_delay_seconds"`
	LongBatchThreshold          int     `mapstructure:"rank_check_long_batch_threshold"`
	MaxRetries                  int     `mapstructure:"rank_check_max_retries"`
	RetryBaseDelaySeconds       int     `mapstructure:"rank_check_retry_base_delay_seconds"`
	WarningFailureRate          float64 `mapstructure:"rank_check_warning_failure_rate"`
	MaxKeywordsPerBatch         int     `mapstructure:"rank_check_max_keywords_per_batch"`
	DropOutFloorRank            int     `mapstructure:"rank_check_drop_out_floor_rank"`
}

type RankTrackingSync struct {
	CronSchedule        string `mapstructure:"rank_tracking_sync_cron"`
	Enabled             bool   `mapstructure:"rank_tracking_sync_enabled"`
	BatchTimeoutMinutes int    `mapstructure:"rank_tracking_sync_batch_timeout_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/rank_tracker?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")
	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("SERP_PROVIDER", "")
	viper.SetDefault("SERP_BULK_URL", "https://api.valueserp.com")
	viper.SetDefault("SERP_BULK_API_KEY", "")
	viper.SetDefault("SERP_BULK_COST_PER_PAGE", 0.0025)
	viper.SetDefault("SERP_INCREMENTAL_URL", "https://api.dataforseo.com")
	viper.SetDefault("SERP_INCREMENTAL_LOGIN", "")
	viper.SetDefault("SERP_INCREMENTAL_PASSWORD", "")
	viper.SetDefault("SERP_INCREMENTAL_COST_PER_REQUEST", 0.002)
	viper.SetDefault("SERP_LANGUAGE_CODE", "en")
	viper.SetDefault("SERP_REQUEST_TIMEOUT_SECONDS", 60)
	viper.SetDefault("SERP_GLOBAL_MIN_INTERVAL_MS", 1000) // Intervalo mínimo entre quaisquer chamadas
	viper.SetDefault("SERP_CALLER_MIN_INTERVAL_MS", 0)    // Intervalo mínimo por provedor
	viper.SetDefault("SERP_LOCATIONS_FILE", "")

	viper.SetDefault("RANK_CHECK_DEPTH_TIERS", []int{10, 20, 50, 100})
	viper.SetDefault("RANK_CHECK_MAX_DEPTH", 100)
	viper.SetDefault("RANK_CHECK_PACING_DELAY_SECONDS", 4)            // 4 segundos entre palavras-chave
	viper.SetDefault("RANK_CHECK_LONG_BATCH_PACING_DELAY_SECONDS", 5) // lotes acima do limite
	viper.SetDefault("RANK_CHECK_LONG_BATCH_THRESHOLD", 20)
	viper.SetDefault("RANK_CHECK_MAX_RETRIES", 2)
	viper.SetDefault("RANK_CHECK_RETRY_BASE_DELAY_SECONDS", 2) // 2s, 4s
	viper.SetDefault("RANK_CHECK_WARNING_FAILURE_RATE", 0.3)
	viper.SetDefault("RANK_CHECK_MAX_KEYWORDS_PER_BATCH", 50)
	viper.SetDefault("RANK_CHECK_DROP_OUT_FLOOR_RANK", 101)

	viper.SetDefault("RANK_TRACKING_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RANK_TRACKING_SYNC_ENABLED", false)
	viper.SetDefault("RANK_TRACKING_SYNC_BATCH_TIMEOUT_MINUTES", 15)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	config, err := decode()
	if err != nil {
		return nil, err
	}

	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		secretsByCode, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
		ApplySerpSecrets(config, secretsByCode)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func decode() (*Config, error) {
	config := &Config{}

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

// ApplySerpSecrets preenche credenciais de SERP ausentes com os secret files do Render
func ApplySerpSecrets(config *Config, secretsByCode map[string]string) {
	if value, ok := secretsByCode["serp_bulk_api_key"]; ok && config.Serp.BulkAPIKey == "" {
		config.Serp.BulkAPIKey = value
	}
	if value, ok := secretsByCode["serp_incremental_login"]; ok && config.Serp.IncrementalLogin == "" {
		config.Serp.IncrementalLogin = value
	}
	if value, ok := secretsByCode["serp_incremental_password"]; ok && config.Serp.IncrementalPassword == "" {
		config.Serp.IncrementalPassword = value
	}
}

// PacingDelay retorna o intervalo entre palavras-chave considerando o tamanho do lote
func (r RankCheck) PacingDelay(batchSize int) time.Duration {
	if r.LongBatchThreshold > 0 && batchSize > r.LongBatchThreshold {
		return time.Duration(r.LongBatchPacingDelaySeconds) * time.Second
	}
	return time.Duration(r.PacingDelaySeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
