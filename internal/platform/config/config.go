// Package config carga la configuración del recetario desde defaults,
// un archivo opcional (cookbook.yaml) y variables de entorno.
package config

import (
	"errors"
	"fmt"
	"strings"

	"cookbook/internal/platform/logger"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port string

	StoreDriver string
	DBPath      string // archivo sqlite
	DBDSN       string // postgres

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	CORSOrigins []string
}

// Addr devuelve la dirección de escucha del server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Logger construye el logger según la config.
func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
	})
}

// NewViper devuelve una instancia con defaults y env ya configurados.
// El CLI la usa para bindear flags antes de llamar a Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("store_driver", "")
	v.SetDefault("db_path", "cookbook.db")
	v.SetDefault("db_dsn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "cookbook")
	v.SetDefault("cors_origins", "*")

	// PORT, DB_PATH, DB_DSN, STORE_DRIVER, LOG_LEVEL, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load lee configFile si viene (o busca cookbook.yaml en el cwd) y valida.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if v == nil {
		v = NewViper()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		// Sin SetConfigType: si no, viper toma el binario "cookbook" como yaml.
		v.SetConfigName("cookbook")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Port:        strings.TrimSpace(v.GetString("port")),
		StoreDriver: strings.ToLower(strings.TrimSpace(v.GetString("store_driver"))),
		DBPath:      strings.TrimSpace(v.GetString("db_path")),
		DBDSN:       strings.TrimSpace(v.GetString("db_dsn")),
		LogLevel:    logger.ParseLevel(v.GetString("log_level")),
		LogFormat:   logger.ParseFormat(v.GetString("log_format")),
		AppName:     strings.TrimSpace(v.GetString("app_name")),
		CORSOrigins: splitCSV(v.GetString("cors_origins")),
	}

	// Sin driver explícito: postgres si hay DSN (como antes), si no sqlite.
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverSQLite
		if cfg.DBDSN != "" {
			cfg.StoreDriver = DriverPostgres
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port is empty", ErrInvalidConfig)
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("%w: db_path is required for sqlite", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("%w: db_dsn is required for postgres", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown store_driver %q", ErrInvalidConfig, c.StoreDriver)
	}
	return nil
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
