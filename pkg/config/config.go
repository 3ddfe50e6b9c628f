package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/faftech/portfolio-admin/pkg/logging"
)

// DirName is the per-user configuration directory under $HOME.
const DirName = ".portfolio-admin"

// Config represents the application configuration.
type Config struct {
	BaseURL     string   `json:"base_url" yaml:"base_url" env:"PORTFOLIO_BASE_URL" env-default:"https://faftech-be.vercel.app/api/v1"`
	Environment string   `json:"environment" yaml:"environment" env:"PORTFOLIO_ENVIRONMENT" env-default:"production"`
	AdminName   string   `json:"admin_name" yaml:"admin_name" env:"PORTFOLIO_ADMIN_NAME" env-default:"admin"`
	TokenPath   string   `json:"token_path,omitempty" yaml:"token_path,omitempty" env:"PORTFOLIO_TOKEN_PATH"`
	ActivityDB  string   `json:"activity_db,omitempty" yaml:"activity_db,omitempty" env:"PORTFOLIO_ACTIVITY_DB"`
	AI          AIConfig `json:"ai" yaml:"ai"`
}

// AIConfig selects the generative text provider.
type AIConfig struct {
	Provider string `json:"provider" yaml:"provider" env:"PORTFOLIO_AI_PROVIDER" env-default:"gemini"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty" env:"PORTFOLIO_AI_MODEL"`
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty" env:"PORTFOLIO_AI_API_KEY"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty" env:"PORTFOLIO_AI_BASE_URL"`
}

// providerKeyEnv is the vendor variable consulted when no key is configured.
//
//nolint:gochecknoglobals // fixed lookup table
var providerKeyEnv = map[string][]string{
	"anthropic": {"ANTHROPIC_API_KEY"},
	"openai":    {"OPENAI_API_KEY"},
	"gemini":    {"GEMINI_API_KEY", "API_KEY"},
}

// DefaultDir returns ~/.portfolio-admin.
func DefaultDir() (dir string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return dir, err
	}

	dir = filepath.Join(homeDir, DirName)
	return dir, err
}

// DefaultPath returns ~/.portfolio-admin/config.json.
func DefaultPath() (path string, err error) {
	var dir string
	dir, err = DefaultDir()
	if err != nil {
		return path, err
	}

	path = filepath.Join(dir, "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing file is not an error: defaults and the environment apply.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err):
		err = cleanenv.ReadEnv(&cfg)
		if err != nil {
			err = errors.Wrap(err, "failed to read config from environment")
			return cfg, err
		}
	default:
		err = errors.Wrapf(err, "failed to stat config file: %s", path)
		return cfg, err
	}

	cfg.fillPaths(filepath.Dir(path))

	// Fall back to the provider's own key variable.
	if cfg.AI.APIKey == "" {
		for _, name := range providerKeyEnv[cfg.AI.Provider] {
			if apiKey := os.Getenv(name); apiKey != "" {
				cfg.AI.APIKey = apiKey
				break
			}
		}
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// fillPaths places the token file and activity database next to the config.
func (c *Config) fillPaths(dir string) {
	if c.TokenPath == "" {
		c.TokenPath = filepath.Join(dir, "token")
	}
	if c.ActivityDB == "" {
		c.ActivityDB = filepath.Join(dir, "activity.db")
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	if c.BaseURL == "" {
		err = errors.New("base_url is required in config")
		return err
	}

	var u *url.URL
	u, err = url.Parse(c.BaseURL)
	if err != nil {
		err = errors.Wrapf(err, "invalid base_url: %s", c.BaseURL)
		return err
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err = errors.Errorf("base_url must be an http(s) URL: %s", c.BaseURL)
		return err
	}

	if _, ok := providerKeyEnv[c.AI.Provider]; !ok {
		err = errors.Errorf("ai.provider must be one of anthropic, openai, gemini: %q", c.AI.Provider)
		return err
	}

	if c.AdminName == "" {
		c.AdminName = "admin"
	}

	return err
}

// Masked returns a copy safe to display, with the API key hidden.
func (c Config) Masked() (masked Config) {
	masked = c
	if masked.AI.APIKey != "" {
		masked.AI.APIKey = logging.RedactToken(masked.AI.APIKey)
	}
	return masked
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Config{
		BaseURL:     "https://faftech-be.vercel.app/api/v1",
		Environment: "production",
		AdminName:   "admin",
		TokenPath:   filepath.Join(dir, "token"),
		ActivityDB:  filepath.Join(dir, "activity.db"),
		AI: AIConfig{
			Provider: "gemini",
		},
	}

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
