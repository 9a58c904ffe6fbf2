package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SnapshotSourceFile = "file"
	SnapshotSourceHTTP = "http"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Snapshot     Snapshot     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Enabled        bool   `mapstructure:"database_enabled"`
	MigrateOnStart bool   `mapstructure:"database_migrate_on_start"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Snapshot define de onde os arquivos JSON de vendas são lidos
type Snapshot struct {
	Source           string        `mapstructure:"snapshot_source"`
	DataDir          string        `mapstructure:"snapshot_data_dir"`
	BaseURL          string        `mapstructure:"snapshot_base_url"`
	ArchiveStartYear int           `mapstructure:"snapshot_archive_start_year"`
	RequestTimeout   time.Duration `mapstructure:"snapshot_request_timeout"`
}

type Auth struct {
	Password  string        `mapstructure:"auth_password"`
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_MIGRATE_ON_START", true)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SNAPSHOT_SOURCE", SnapshotSourceFile)
	viper.SetDefault("SNAPSHOT_DATA_DIR", "./data")
	viper.SetDefault("SNAPSHOT_BASE_URL", "")
	viper.SetDefault("SNAPSHOT_ARCHIVE_START_YEAR", 2023) // Primeiro ano com arquivo anual
	viper.SetDefault("SNAPSHOT_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("AUTH_PASSWORD", "sales2025") // ONLY LOCAL
	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := config.resolvePaths(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolvePaths fixa o diretório de snapshots relativo ao diretório de execução
func (c *Config) resolvePaths() error {
	if c.Snapshot.DataDir == "" || filepath.IsAbs(c.Snapshot.DataDir) {
		return nil
	}

	dir, err := filepath.Abs(c.Snapshot.DataDir)
	if err != nil {
		return fmt.Errorf("config: SNAPSHOT_DATA_DIR inválido '%s': %w", c.Snapshot.DataDir, err)
	}

	c.Snapshot.DataDir = dir
	return nil
}

// Validate verifica as combinações de configuração que impedem a aplicação de subir
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: porta inválida '%s'", c.Server.Port)
	}

	switch c.Snapshot.Source {
	case SnapshotSourceFile:
		if c.Snapshot.DataDir == "" {
			return fmt.Errorf("config: SNAPSHOT_DATA_DIR é obrigatório para a origem '%s'", SnapshotSourceFile)
		}
	case SnapshotSourceHTTP:
		if c.Snapshot.BaseURL == "" {
			return fmt.Errorf("config: SNAPSHOT_BASE_URL é obrigatório para a origem '%s'", SnapshotSourceHTTP)
		}
	default:
		return fmt.Errorf("config: origem de snapshot desconhecida '%s'", c.Snapshot.Source)
	}

	if c.Snapshot.RequestTimeout <= 0 {
		return fmt.Errorf("config: SNAPSHOT_REQUEST_TIMEOUT deve ser positivo")
	}

	if c.Auth.Password == "" || c.Auth.SecretKey == "" {
		return fmt.Errorf("config: AUTH_PASSWORD e SECRET_KEY são obrigatórios")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: AUTH_TOKEN_TTL deve ser positivo")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
