package syncer

import "time"

type Config struct {
	// VisibleRows is the number of events shown by a collapsed drawer.
	// Longer histories expand the drawer.
	VisibleRows int `mapstructure:"visible-rows"`
	// RefreshTimeout bounds a single history or balance query.
	RefreshTimeout time.Duration `mapstructure:"refresh-timeout"`
}

func DefaultConfig() Config {
	return Config{
		VisibleRows:    5,
		RefreshTimeout: 30 * time.Second,
	}
}
