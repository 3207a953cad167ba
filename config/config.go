package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/fe"
	"github.com/forestrie/go-meshdofs/tria"
)

// Config holds the process level defaults for handlers.
type Config struct {
	// Checked turns on the handler checks even in builds without the
	// invariants tag. It cannot turn them off in an invariants build.
	Checked bool `env:"MESHDOFS_CHECKED"`
	// LogLevel is passed to logger.New. NOOP silences the handlers.
	LogLevel string `env:"MESHDOFS_LOG_LEVEL" envDefault:"NOOP"`
	// ServiceName labels the handler log lines.
	ServiceName string `env:"MESHDOFS_SERVICE_NAME" envDefault:"meshdofs"`
	// ElementCatalog is an optional yaml file of named elements.
	ElementCatalog string `env:"MESHDOFS_ELEMENT_CATALOG"`
}

// FromEnv reads a Config from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Logger initialises the process logger at the configured level and returns
// the handler logger.
func (cfg Config) Logger() logger.Logger {
	logger.New(cfg.LogLevel)
	return logger.Sugar.WithServiceName(cfg.ServiceName)
}

// HandlerOptions returns the options for handlers created under cfg.
func (cfg Config) HandlerOptions(log logger.Logger) []dofs.Option {
	opts := []dofs.Option{dofs.WithLogger(log)}
	if cfg.Checked {
		opts = append(opts, dofs.WithChecks(true))
	}
	return opts
}

// Catalog loads the configured element catalog. It returns nil when none is
// configured.
func (cfg Config) Catalog() (*fe.Catalog, error) {
	if cfg.ElementCatalog == "" {
		return nil, nil
	}
	return fe.LoadCatalog(cfg.ElementCatalog)
}

// NewHandler creates a handler on t configured by cfg and, if element is not
// empty, selects that element from the catalog.
func (cfg Config) NewHandler(t *tria.Triangulation, element string) (*dofs.Handler, error) {
	h, err := dofs.NewHandler(t, cfg.HandlerOptions(cfg.Logger())...)
	if err != nil {
		return nil, err
	}
	if element == "" {
		return h, nil
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, errors.Wrapf(fe.ErrNotFound, "%q: no element catalog configured", element)
	}
	el, err := catalog.Get(element)
	if err != nil {
		return nil, err
	}
	if err := h.SelectElement(el); err != nil {
		return nil, err
	}
	return h, nil
}
