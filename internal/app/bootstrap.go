package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/FortiShield/tradescope/internal/exchange"
	"github.com/FortiShield/tradescope/internal/infra"
	"github.com/FortiShield/tradescope/internal/tensorboard"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config   *infra.Config
	Registry *exchange.Registry
	Exchange *exchange.Adapter

	// Set only when freqai is enabled.
	TBLogger   tensorboard.Logger
	TBCallback tensorboard.Callback
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration and resolves the exchange adapter and
// training instrumentation.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return b.InitializeWith(cfg)
}

// InitializeWith runs the startup sequence on an already loaded config.
func (b *Bootstrap) InitializeWith(cfg *infra.Config) error {
	b.Config = cfg

	slog.SetDefault(infra.NewLogger(cfg))
	slog.Info("Bootstrapping Tradescope", slog.String("version", cfg.App.Version))

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	b.Registry = reg

	adapter, err := reg.Resolve(cfg.Exchange.Name)
	if err != nil {
		return err
	}
	b.Exchange = adapter
	slog.Info("Exchange adapter ready",
		slog.String("exchange", adapter.Name()),
		slog.Bool("supported", adapter.Supported()),
		slog.Int("capabilities", adapter.Capabilities().Len()))

	if cfg.FreqAI.Enabled {
		tb := cfg.FreqAI.Tensorboard
		logger, err := tensorboard.NewTBLogger(infra.TensorboardDir(cfg), tb.Activate)
		if err != nil {
			return fmt.Errorf("failed to create training logger: %w", err)
		}
		b.TBLogger = logger
		b.TBCallback = tensorboard.NewTBCallback(logger, tb.Verbose)
		slog.Info("FreqAI instrumentation ready", slog.String("mode", tensorboard.ActiveMode().String()))
	}

	return nil
}

func loadRegistry(cfg *infra.Config) (*exchange.Registry, error) {
	if cfg.Exchange.CatalogPath == "" {
		return exchange.Default(), nil
	}

	cat, err := exchange.LoadCatalogFile(cfg.Exchange.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load capability catalog: %w", err)
	}
	return exchange.NewRegistryFromCatalog(cat)
}

// Banner returns what the startup banner should show.
func (b *Bootstrap) Banner() infra.BannerInfo {
	info := infra.BannerInfo{
		Version:         b.Config.App.Version,
		Exchange:        b.Exchange.Name(),
		Supported:       b.Exchange.Supported(),
		Generic:         b.Exchange.Generic(),
		Instrumentation: "DISABLED",
	}
	if b.TBLogger != nil {
		info.Instrumentation = tensorboard.ActiveMode().String()
	}
	return info
}

// Close releases the training logger.
func (b *Bootstrap) Close() error {
	var errs []error
	if b.TBLogger != nil {
		errs = append(errs, b.TBLogger.Close())
	}
	return errors.Join(errs...)
}
