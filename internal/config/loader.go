package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "PURRLOG_"

	// Alias legado para la api key.
	legacyAPIKeyEnv = "GEMINI_API_KEY"

	maxConfigFileSize = 1 << 20
)

// Load lee el YAML en path (si path != ""), aplica env, defaults y valida.
// Un path inexistente es error: si alguien lo pasa, espera que exista.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadUnvalidated hace lo mismo que Load sin llamar a Validate (útil para "config check").
func LoadUnvalidated(path string) (*Config, error) {
	k := koanf.New(".")

	if strings.TrimSpace(path) != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes", info.Size())
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Assistant.APIKey.Value()) == "" {
		cfg.Assistant.APIKey = Secret(strings.TrimSpace(os.Getenv(legacyAPIKeyEnv)))
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// envKey: PURRLOG_ASSISTANT_API_KEY -> assistant.api_key
// Se parte solo en el primer "_" (seccion.campo_compuesto).
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}
