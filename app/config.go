package app

import "time"

type Config struct {
	// LaunchDelay is the pause between launch and the first readiness check.
	LaunchDelay time.Duration `mapstructure:"launch-delay"`
	// RouteDelay is the pause before the splash route is left for onboarding or home.
	RouteDelay time.Duration `mapstructure:"route-delay"`
}

func DefaultConfig() Config {
	return Config{
		LaunchDelay: 20 * time.Millisecond,
		RouteDelay:  3 * time.Second,
	}
}
