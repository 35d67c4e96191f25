package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/graph-presence-cli/internal/adapters/apiclient"
	"github.com/bnema/graph-presence-cli/internal/adapters/graph"
	"github.com/bnema/graph-presence-cli/internal/adapters/metrics"
	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	chainstore "github.com/bnema/graph-presence-cli/internal/adapters/store/chain"
	tomlstore "github.com/bnema/graph-presence-cli/internal/adapters/store/toml"
	"github.com/bnema/graph-presence-cli/internal/application"
	"github.com/bnema/graph-presence-cli/internal/config"
	"github.com/bnema/graph-presence-cli/internal/logging"
	"github.com/bnema/graph-presence-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	viper *viper.Viper

	cfg        config.Config
	metrics    *metrics.Metrics
	endpoints  *application.Endpoints
	controller *application.Controller
}

func newApp() *app {
	return &app{viper: viper.New()}
}

// wire builds the app once flags are parsed, so flag-bound config keys apply.
func (a *app) wire(cmd *cobra.Command) error {
	cfg, err := config.Load(a.viper)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logging.Init(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	m := metrics.New()
	endpoints := application.NewEndpoints(
		graph.Acquirer{
			LoginBaseURL: cfg.LoginBaseURL,
			HTTPClient:   upstreamClient(m, metrics.UpstreamLogin, cfg.HTTPTimeout),
		},
		graph.Gateway{
			BaseURL:    cfg.APIBaseURL,
			HTTPClient: upstreamClient(m, metrics.UpstreamGraph, cfg.HTTPTimeout),
		},
	)

	var api ports.PresenceAPI = apiclient.NewLocal(endpoints)
	if cfg.ServerURL != "" {
		api = apiclient.NewRemote(cfg.ServerURL, &http.Client{Timeout: cfg.HTTPTimeout})
	}

	durable, err := tomlstore.NewStore(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("wire durable store: %w", err)
	}
	session, err := chainstore.NewSessionStore(cfg.SessionDir)
	if err != nil {
		return fmt.Errorf("wire session store: %w", err)
	}

	clock := ports.SystemClock{}
	controller := application.NewController(
		api,
		application.NewSessionStore(durable, session),
		application.NewLogbook(clock),
		console.NewNotifier(cmd.OutOrStdout()),
		clock,
	)
	if err := controller.Load(cmd.Context()); err != nil {
		return err
	}

	a.cfg = cfg
	a.metrics = m
	a.endpoints = endpoints
	a.controller = controller
	return nil
}

func upstreamClient(m *metrics.Metrics, upstream string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: m.Transport(upstream, nil),
	}
}
