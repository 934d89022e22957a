package registry

import (
	"context"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/env"
)

const (
	// Version is the current version of the registry API.
	Version string = "0.0.1"

	// TimeResolutionNs is the resolution of our time variables in nanoseconds
	// (aka resolution in milliseconds).
	TimeResolutionNs int64 = 1000 * 1000
)

const (
	// EnvCfgHost is the env config key for the registry host.
	EnvCfgHost env.ConfigKey = "registry_host"
	// EnvCfgPort is the env config key for the port the registry is listening
	// on.
	EnvCfgPort env.ConfigKey = "registry_port"
)

// DefaultPort is the default port the registry listens on, by environment.
var DefaultPort = map[env.Environment]int64{
	env.Production: 2047,
	env.QA:         3047,
}

// GetHost retrieves the current registry host from the context.
func GetHost(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgHost]
}

// GetPort retrieves the current registry port from the context.
func GetPort(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgPort]
}
