package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".propertypro"
	configFileName = "config.toml"
	envPrefix      = "PPAI"

	apiBaseURLKey     = "api.base_url"
	apiTimeoutKey     = "api.timeout"
	logLevelKey       = "log.level"
	aiProviderKey     = "ai.provider"
	secretsDirKey     = "secrets.dir"
	secretsBackendKey = "secrets.backend"

	secretsBackendChain = "chain"
	secretsBackendFile  = "file"
)

// loadConfig reads ~/.propertypro/config.toml when present. PPAI_* variables override file values,
// with dots in keys replaced by underscores (PPAI_API_BASE_URL for api.base_url).
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigFile(filepath.Join(configDir, configFileName))
	cfg.SetConfigType("toml")
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(apiBaseURLKey, "http://localhost:8000")
	cfg.SetDefault(apiTimeoutKey, 30*time.Second)
	cfg.SetDefault(logLevelKey, logrus.WarnLevel.String())
	cfg.SetDefault(aiProviderKey, string(domain.AIProviderOpenAI))
	cfg.SetDefault(secretsDirKey, filepath.Join(configDir, "secrets"))
	cfg.SetDefault(secretsBackendKey, secretsBackendChain)

	if err := cfg.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg *viper.Viper, output io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.GetString(logLevelKey))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", logLevelKey, err)
	}

	log := logrus.New()
	log.SetOutput(output)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(level)
	return log, nil
}

func aiProvider(cfg *viper.Viper) (domain.AIProvider, error) {
	provider := domain.AIProvider(strings.ToLower(strings.TrimSpace(cfg.GetString(aiProviderKey))))
	if !provider.Valid() {
		return "", fmt.Errorf("unsupported %s %q (use %s or %s)", aiProviderKey, provider, domain.AIProviderOpenAI, domain.AIProviderGemini)
	}
	return provider, nil
}
