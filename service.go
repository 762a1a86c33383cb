package condor2nav

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance. The translator pipeline shares one router for the whole
// process; it is constructed lazily on first use and lives until exit.
var (
	defaultRouter *Router
	defaultOnce   sync.Once
	defaultErr    error
)

// Builder provides a way to create Router instances with a custom
// environment prefix
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Router instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Router instance using the builder's prefix
func (b *Builder) New() (*Router, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global router instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultRouter, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates a new router instance with given config
func New(cfg *Config) (*Router, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	local, err := CreateBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	ch, err := CreateChannel(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	var device Backend
	if ch != nil {
		device = NewDeviceBackend(ch)
	}

	var opts []RouterOption
	if cfg.ShareReads == "reject" {
		opts = append(opts, WithShareReadPolicy(ShareReadReject))
	}

	return NewRouter(local, device, opts...), nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.Backend == "" {
		return errors.New("backend is required")
	}
	if cfg.Channel == "" {
		return errors.New("channel is required (use \"none\" to run without a device)")
	}

	switch cfg.ShareReads {
	case "local", "reject":
	default:
		return fmt.Errorf("unknown share read policy: %s", cfg.ShareReads)
	}

	return nil
}

// Default returns the global router, initializing it from the environment
// if needed
func Default() (*Router, error) {
	if defaultRouter == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultRouter, nil
}

// NewFromEnv creates an instance from environment variables
func NewFromEnv() (*Router, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultRouter = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}
