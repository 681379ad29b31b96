package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/config"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/dispatch"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/provider"
)

var cfgFile string

// NewRootCmd assembles the financeguru command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "financeguru",
		Short:         "Personal finance advice from an AI model or a built-in playbook",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")

	root.AddCommand(NewServeCmd())
	root.AddCommand(NewAskCmd())
	root.AddCommand(NewChatCmd())
	root.AddCommand(NewTopicsCmd())
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles what every subcommand needs.
type app struct {
	cfg        config.Config
	log        *logrus.Logger
	dispatcher *dispatch.Dispatcher
}

func loadApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	d := dispatch.New(log,
		provider.NewOpenAIProvider(cfg.OpenAI, client),
		provider.NewHuggingFaceProvider(cfg.HuggingFace, client),
	)
	return &app{cfg: cfg, log: log, dispatcher: d}, nil
}

func newLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log, nil
}
