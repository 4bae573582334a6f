// Package config carga la configuración de purrlog.
//
// Precedencia (mayor a menor):
//  1. Variables de entorno PURRLOG_<SECCION>_<CAMPO> (ej: PURRLOG_ASSISTANT_API_KEY -> assistant.api_key)
//  2. Archivo YAML (opcional)
//  3. Defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey   = errors.New("assistant.api_key is required")
	ErrInvalidDriver   = errors.New("unknown storage driver")
	ErrInvalidTimezone = errors.New("invalid app.timezone")
)

type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	App          AppConfig          `koanf:"app"`
	Storage      StorageConfig      `koanf:"storage"`
	Assistant    AssistantConfig    `koanf:"assistant"`
	Auth         AuthConfig         `koanf:"auth"`
	Capabilities CapabilitiesConfig `koanf:"capabilities"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug|info|warn|error
	Format string `koanf:"format"` // text|json
}

type AppConfig struct {
	Name string `koanf:"name"`
	// Zona horaria del "día local" del usuario. "Local" = la del proceso.
	Timezone string `koanf:"timezone"`
}

// StorageConfig selecciona el blob store donde se guardan los snapshots.
type StorageConfig struct {
	Driver      string `koanf:"driver"` // memory|fs|sqlite|postgres|s3
	KeyPrefix   string `koanf:"key_prefix"`
	FSRoot      string `koanf:"fs_root"`
	SQLitePath  string `koanf:"sqlite_path"`
	PostgresDSN Secret `koanf:"postgres_dsn"`
	S3Bucket    string `koanf:"s3_bucket"`
	S3Region    string `koanf:"s3_region"`
	S3Endpoint  string `koanf:"s3_endpoint"`
	S3PathStyle bool   `koanf:"s3_path_style"`
}

type AssistantConfig struct {
	APIKey  Secret        `koanf:"api_key"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
	BaseURL string        `koanf:"base_url"` // opcional (proxy / tests)
}

// AuthConfig: si OdinBaseURL está vacío se corre en modo dev (X-Debug-User-ID).
type AuthConfig struct {
	OdinBaseURL string `koanf:"odin_base_url"`
	OdinAPIKey  Secret `koanf:"odin_api_key"`
}

type CapabilitiesConfig struct {
	BaseURL  string `koanf:"base_url"`
	APIKey   Secret `koanf:"api_key"`
	AllowAll bool   `koanf:"allow_all"`
}

// Secret se imprime redactado.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

func (s Secret) GoString() string { return "Secret([REDACTED])" }

func (s Secret) Value() string { return string(s) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

var storageDrivers = map[string]struct{}{
	"memory":   {},
	"fs":       {},
	"sqlite":   {},
	"postgres": {},
	"s3":       {},
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 5 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		// el turno del asistente puede tardar; el write timeout tiene que cubrirlo
		cfg.Server.WriteTimeout = 90 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if strings.TrimSpace(cfg.Log.Format) == "" {
		cfg.Log.Format = "text"
	}
	if strings.TrimSpace(cfg.App.Name) == "" {
		cfg.App.Name = "purrlog"
	}
	if strings.TrimSpace(cfg.App.Timezone) == "" {
		cfg.App.Timezone = "Local"
	}
	if strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage.Driver = "memory"
	}
	if strings.TrimSpace(cfg.Storage.KeyPrefix) == "" {
		cfg.Storage.KeyPrefix = "purrlog"
	}
	if strings.TrimSpace(cfg.Storage.FSRoot) == "" {
		cfg.Storage.FSRoot = "./data"
	}
	if strings.TrimSpace(cfg.Storage.SQLitePath) == "" {
		cfg.Storage.SQLitePath = "purrlog.db"
	}
	if strings.TrimSpace(cfg.Storage.S3Region) == "" {
		cfg.Storage.S3Region = "us-east-1"
	}
	if strings.TrimSpace(cfg.Assistant.Model) == "" {
		cfg.Assistant.Model = "gemini-3-pro-preview"
	}
	if cfg.Assistant.Timeout == 0 {
		cfg.Assistant.Timeout = 60 * time.Second
	}
}

// Validate falla rápido ante configuración incompleta.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Assistant.APIKey.Value()) == "" {
		return ErrMissingAPIKey
	}
	if c.Assistant.Timeout < 0 {
		return errors.New("assistant.timeout cannot be negative")
	}
	if _, ok := storageDrivers[c.Storage.Driver]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDriver, c.Storage.Driver)
	}
	switch c.Storage.Driver {
	case "postgres":
		if strings.TrimSpace(c.Storage.PostgresDSN.Value()) == "" {
			return errors.New("storage.postgres_dsn is required for driver postgres")
		}
	case "s3":
		if strings.TrimSpace(c.Storage.S3Bucket) == "" {
			return errors.New("storage.s3_bucket is required for driver s3")
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resuelve app.timezone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.App.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}
	return loc, nil
}
