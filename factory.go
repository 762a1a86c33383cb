package condor2nav

import (
	"fmt"
	"sync"
)

// BackendFactory is a function that creates a local Backend from a config
type BackendFactory func(cfg *Config) (Backend, error)

// ChannelFactory is a function that creates a device Channel from a config
type ChannelFactory func(cfg *Config) (Channel, error)

var (
	backendFactories = make(map[string]BackendFactory)
	channelFactories = make(map[string]ChannelFactory)
	factoryMutex     sync.RWMutex
)

// RegisterBackend registers a backend factory function. Backend packages
// call this from init; importing the package makes the backend available.
func RegisterBackend(name string, factory BackendFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	backendFactories[name] = factory
}

// RegisterChannel registers a channel factory function.
func RegisterChannel(name string, factory ChannelFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	channelFactories[name] = factory
}

// CreateBackend creates the configured local backend instance.
func CreateBackend(cfg *Config) (Backend, error) {
	factoryMutex.RLock()
	factory, exists := backendFactories[cfg.Backend]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend %s not registered", cfg.Backend)
	}

	return factory(cfg)
}

// CreateChannel creates the configured device channel instance. The channel
// name "none" yields a nil channel: the router then runs without a paired
// device.
func CreateChannel(cfg *Config) (Channel, error) {
	if cfg.Channel == "none" {
		return nil, nil
	}

	factoryMutex.RLock()
	factory, exists := channelFactories[cfg.Channel]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("channel %s not registered", cfg.Channel)
	}

	return factory(cfg)
}
