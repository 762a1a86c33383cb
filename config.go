package condor2nav

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Local backend to use
	Backend string `env:"CONDOR2NAV_BACKEND,default:local"`

	// Device channel to use ("none" runs without a paired device)
	Channel string `env:"CONDOR2NAV_CHANNEL,default:memory"`

	// How reads treat UNC network share paths: "local" or "reject"
	ShareReads string `env:"CONDOR2NAV_SHARE_READS,default:local"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
