package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App        AppConfig        `toml:"app"`
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	JWT        JWTConfig        `toml:"jwt"`
	Projection ProjectionConfig `toml:"projection"`
	Alerts     AlertsConfig     `toml:"alerts"`
	SMTP       SMTPConfig       `toml:"smtp"`
}

type AppConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
	LogLevel    string `toml:"log_level"`
}

type ServerConfig struct {
	Port           string `toml:"port"`
	RateLimit      int    `toml:"rate_limit"`
	AllowedOrigins string `toml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string        `toml:"host"`
	Port            int           `toml:"port"`
	User            string        `toml:"user"`
	Password        string        `toml:"password"`
	DBName          string        `toml:"dbname"`
	SSLMode         string        `toml:"sslmode"`
	DSN             string        `toml:"dsn"`
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret   string        `toml:"secret"`
	Issuer   string        `toml:"issuer"`
	Lifetime time.Duration `toml:"lifetime"`
}

// ProjectionConfig holds engine defaults used when a request omits them.
type ProjectionConfig struct {
	DefaultMonths      int `toml:"default_months"`
	MaxMonths          int `toml:"max_months"`
	MinBiweeklyPeriods int `toml:"min_biweekly_periods"`
	MaxBiweeklyPeriods int `toml:"max_biweekly_periods"`
	MinSimulationTerm  int `toml:"min_simulation_months"`
	MaxSimulationTerm  int `toml:"max_simulation_term"`
	DefaultPayday1     int `toml:"default_payday_1"`
	DefaultPayday2     int `toml:"default_payday_2"`
}

type AlertsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "finanzapp",
			Environment: "development",
			LogLevel:    "info",
		},
		Server: ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			AllowedOrigins: "*",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "finanzapp",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		JWT: JWTConfig{
			Issuer:   "finanzapp",
			Lifetime: 24 * time.Hour,
		},
		Projection: ProjectionConfig{
			DefaultMonths:      6,
			MaxMonths:          120,
			MinBiweeklyPeriods: 12,
			MaxBiweeklyPeriods: 240,
			MinSimulationTerm:  12,
			MaxSimulationTerm:  120,
			DefaultPayday1:     15,
			DefaultPayday2:     30,
		},
		Alerts: AlertsConfig{
			Enabled:  false,
			Schedule: "0 8 * * *",
		},
		SMTP: SMTPConfig{
			Port: "587",
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file named by
// FINANZ_CONFIG and finally the environment.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("FINANZ_CONFIG"))
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("lendo arquivo de configuração %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	p := c.Projection
	if p.DefaultPayday1 < 1 || p.DefaultPayday1 > 31 || p.DefaultPayday2 < 1 || p.DefaultPayday2 > 31 {
		return fmt.Errorf("dias de pagamento padrão devem estar entre 1 e 31")
	}
	if p.DefaultPayday1 == p.DefaultPayday2 {
		return fmt.Errorf("dias de pagamento padrão devem ser diferentes")
	}
	if p.DefaultMonths < 1 || p.DefaultMonths > p.MaxMonths {
		return fmt.Errorf("projection.default_months fora do intervalo 1..%d", p.MaxMonths)
	}
	if c.Alerts.Enabled && c.SMTP.Host == "" {
		return fmt.Errorf("alertas habilitados sem SMTP_HOST configurado")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func applyEnv(cfg *Config) {
	setString(&cfg.App.Environment, "APP_ENV")
	setString(&cfg.App.LogLevel, "LOG_LEVEL")

	setString(&cfg.Server.Port, "PORT")
	setInt(&cfg.Server.RateLimit, "RATE_LIMIT")
	setString(&cfg.Server.AllowedOrigins, "ALLOWED_ORIGINS")

	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setInt(&cfg.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	setInt(&cfg.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	setDuration(&cfg.Database.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.JWT.Issuer, "JWT_ISSUER")
	setDuration(&cfg.JWT.Lifetime, "JWT_LIFETIME")

	setInt(&cfg.Projection.DefaultMonths, "PROJECTION_DEFAULT_MONTHS")
	setInt(&cfg.Projection.MinBiweeklyPeriods, "PROJECTION_MIN_BIWEEKLY_PERIODS")
	setInt(&cfg.Projection.DefaultPayday1, "DEFAULT_PAYDAY_1")
	setInt(&cfg.Projection.DefaultPayday2, "DEFAULT_PAYDAY_2")

	setBool(&cfg.Alerts.Enabled, "ALERTS_ENABLED")
	setString(&cfg.Alerts.Schedule, "ALERTS_SCHEDULE")

	setString(&cfg.SMTP.Host, "SMTP_HOST")
	setString(&cfg.SMTP.Port, "SMTP_PORT")
	setString(&cfg.SMTP.Username, "SMTP_USERNAME")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.SMTP.From, "SMTP_FROM")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
