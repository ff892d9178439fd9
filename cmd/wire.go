package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/propertypro/ppai/internal/adapters/api"
	"github.com/propertypro/ppai/internal/adapters/metrics"
	tomlrepo "github.com/propertypro/ppai/internal/adapters/repo/toml"
	chainstore "github.com/propertypro/ppai/internal/adapters/secrets/chain"
	filestore "github.com/propertypro/ppai/internal/adapters/secrets/file"
	"github.com/propertypro/ppai/internal/application"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	container *application.Container
	recorder  *metrics.Recorder
	log       *logrus.Logger
	presenter presenter
	asJSON    bool
	now       func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	provider, err := aiProvider(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	secretStore, err := wireSecretStore(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	clock := ports.SystemClock{}
	session := application.NewSessionStore(repo, secretStore, clock, log.WithField("store", "session"))
	client := api.NewClient(
		cfg.GetString(apiBaseURLKey),
		api.WithHTTPClient(&http.Client{Timeout: cfg.GetDuration(apiTimeoutKey)}),
		api.WithSession(session),
		api.WithLogger(log.WithField("component", "api")),
	)

	container := application.NewContainer(application.Dependencies{
		API:      client,
		Session:  session,
		Clock:    clock,
		Log:      log,
		Provider: provider,
	})

	recorder := metrics.NewRecorder()
	container.Coordinator.SubscribeMetrics(recorder.Observe)

	return &app{
		container: container,
		recorder:  recorder,
		log:       log,
		now:       time.Now,
	}, nil
}

func wireSecretStore(cfg *viper.Viper, log logrus.FieldLogger) (ports.SecretStore, error) {
	dir := cfg.GetString(secretsDirKey)
	switch backend := cfg.GetString(secretsBackendKey); backend {
	case secretsBackendChain:
		store, err := chainstore.NewPassWithFileFallback(dir, log.WithField("component", "secrets"))
		if err != nil {
			return nil, fmt.Errorf("create secret store: %w", err)
		}
		return store, nil
	case secretsBackendFile:
		return filestore.NewStore(dir), nil
	default:
		return nil, fmt.Errorf("unsupported %s %q (use %s or %s)", secretsBackendKey, backend, secretsBackendChain, secretsBackendFile)
	}
}
