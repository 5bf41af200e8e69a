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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	LLM          LLM          `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	WeeklyReport WeeklyReport `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

// LLM agrupa a escolha do provedor e as credenciais de cada um
type LLM struct {
	Provider    string        `mapstructure:"llm_provider"`
	Timeout     time.Duration `mapstructure:"llm_timeout"`
	Temperature *float64      `mapstructure:"llm_temperature"` // nil quando não configurada

	GroqAPIKey  string `mapstructure:"groq_api_key"`
	GroqBaseURL string `mapstructure:"groq_base_url"`
	GroqModel   string `mapstructure:"groq_model"`

	GitHubToken   string `mapstructure:"github_token"`
	GitHubBaseURL string `mapstructure:"github_base_url"`
	GitHubModel   string `mapstructure:"github_model"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
	OpenAIModel   string `mapstructure:"openai_model"`

	GeminiAPIKey  string `mapstructure:"gemini_api_key"`
	GeminiBaseURL string `mapstructure:"gemini_base_url"`
	GeminiModel   string `mapstructure:"gemini_model"`
}

type Analytics struct {
	LookbackDays     int    `mapstructure:"analytics_lookback_days"`
	TopProducts      int    `mapstructure:"analytics_top_products"`
	BasketMinSupport int    `mapstructure:"analytics_basket_min_support"`
	BasketLimit      int    `mapstructure:"analytics_basket_limit"`
	StoreName        string `mapstructure:"store_name"`
}

type WeeklyReport struct {
	CronSchedule string `mapstructure:"weekly_report_cron"`
	LookbackDays int    `mapstructure:"weekly_report_lookback_days"`
	OutputDir    string `mapstructure:"weekly_report_output_dir"`
	Enabled      bool   `mapstructure:"weekly_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/muebles?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("LLM_PROVIDER", "groq")
	viper.SetDefault("LLM_TIMEOUT", "30s")
	viper.SetDefault("LLM_TEMPERATURE", 0.2)

	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")

	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_BASE_URL", "https://models.inference.ai.azure.com")
	viper.SetDefault("GITHUB_MODEL", "gpt-4o-mini")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash-lite")

	viper.SetDefault("ANALYTICS_LOOKBACK_DAYS", 180)
	viper.SetDefault("ANALYTICS_TOP_PRODUCTS", 10)
	viper.SetDefault("ANALYTICS_BASKET_MIN_SUPPORT", 2)
	viper.SetDefault("ANALYTICS_BASKET_LIMIT", 10)
	viper.SetDefault("STORE_NAME", "Tienda")

	// Relatório semanal de tendências
	viper.SetDefault("WEEKLY_REPORT_CRON", "0 7 * * 1") // Segundas-feiras às 7h
	viper.SetDefault("WEEKLY_REPORT_LOOKBACK_DAYS", 7)
	viper.SetDefault("WEEKLY_REPORT_OUTPUT_DIR", "reports")
	viper.SetDefault("WEEKLY_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	// Chaves dos provedores de LLM podem vir dos secret files do Render
	if config.Render.ServiceID != "" {
		secrets, err := NewRenderClient(config).ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
		config.LLM.applySecrets(secrets)
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

// applySecrets preenche apenas as chaves que não vieram do ambiente
func (l *LLM) applySecrets(secrets map[string]string) {
	fill := func(dst *string, name string) {
		if v, ok := secrets[name]; ok && *dst == "" {
			*dst = v
		}
	}

	fill(&l.GroqAPIKey, "groq_api_key")
	fill(&l.GitHubToken, "github_token")
	fill(&l.OpenAIAPIKey, "openai_api_key")
	fill(&l.GeminiAPIKey, "gemini_api_key")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
