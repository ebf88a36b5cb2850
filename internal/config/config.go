package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Invoice  InvoiceConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string // silent, error, warn, info
	SlowThreshold   time.Duration
}

// DSN returns the PostgreSQL connection URL.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type HTTPConfig struct {
	MaxBodySize      int64
	CORSAllowOrigins []string
}

// InvoiceConfig drives numbering and document rendering.
type InvoiceConfig struct {
	NumberBaseline int64  // first invoice number ever issued
	MaxAttempts    int    // create attempts on a number conflict
	LogoPath       string // header/footer image; a drawn mark is used when missing
	BusinessName   string
}

// Load reads configs/.env into the process environment, then config.toml,
// then CAFE_* variables. The legacy DB_* and PORT variables are honoured too.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("CAFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
			LogLevel:        v.GetString("database.log_level"),
			SlowThreshold:   v.GetDuration("database.slow_threshold"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
		Invoice: InvoiceConfig{
			NumberBaseline: v.GetInt64("invoice.number_baseline"),
			MaxAttempts:    v.GetInt("invoice.max_attempts"),
			LogoPath:       v.GetString("invoice.logo_path"),
			BusinessName:   v.GetString("invoice.business_name"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("app.port", "CAFE_APP_PORT", "PORT")
	_ = v.BindEnv("database.host", "CAFE_DATABASE_HOST", "DB_HOST")
	_ = v.BindEnv("database.port", "CAFE_DATABASE_PORT", "DB_PORT")
	_ = v.BindEnv("database.user", "CAFE_DATABASE_USER", "DB_USER")
	_ = v.BindEnv("database.password", "CAFE_DATABASE_PASSWORD", "DB_PASSWORD")
	_ = v.BindEnv("database.dbname", "CAFE_DATABASE_DBNAME", "DB_NAME")
	_ = v.BindEnv("database.sslmode", "CAFE_DATABASE_SSLMODE", "DB_SSLMODE")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "palm-cafe")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "palm_cafe")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.slow_threshold", 200*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.max_body_size", 1<<20)
	v.SetDefault("http.cors_allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("invoice.number_baseline", 1000)
	v.SetDefault("invoice.max_attempts", 3)
	v.SetDefault("invoice.logo_path", "assets/logo.png")
	v.SetDefault("invoice.business_name", "PALM CAFE")
}

func (c *Config) validate() error {
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}
	if c.Invoice.NumberBaseline < 1 {
		return fmt.Errorf("invoice number baseline must be positive, got %d", c.Invoice.NumberBaseline)
	}
	if c.Invoice.MaxAttempts < 1 {
		return fmt.Errorf("invoice max attempts must be at least 1, got %d", c.Invoice.MaxAttempts)
	}
	if c.HTTP.MaxBodySize <= 0 {
		return fmt.Errorf("http max body size must be positive, got %d", c.HTTP.MaxBodySize)
	}
	return nil
}
