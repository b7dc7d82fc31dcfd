package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/smwallet/log"
)

const defaultLoggingLevel = zapcore.InfoLevel

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder              string `mapstructure:"log-encoder"`
	AppLoggerLevel       string `mapstructure:"app"`
	MachineLoggerLevel   string `mapstructure:"machine"`
	ProjectorLoggerLevel string `mapstructure:"projector"`
	BootstrapLoggerLevel string `mapstructure:"bootstrap"`
	EngineLoggerLevel    string `mapstructure:"engine"`
	StoreLoggerLevel     string `mapstructure:"store"`
	FilesLoggerLevel     string `mapstructure:"files"`
	EventsLoggerLevel    string `mapstructure:"events"`
	MetricsLoggerLevel   string `mapstructure:"metrics"`
}

func DefaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:              log.ConsoleEncoder,
		AppLoggerLevel:       defaultLoggingLevel.String(),
		MachineLoggerLevel:   defaultLoggingLevel.String(),
		ProjectorLoggerLevel: defaultLoggingLevel.String(),
		BootstrapLoggerLevel: defaultLoggingLevel.String(),
		EngineLoggerLevel:    defaultLoggingLevel.String(),
		StoreLoggerLevel:     defaultLoggingLevel.String(),
		FilesLoggerLevel:     zapcore.WarnLevel.String(),
		EventsLoggerLevel:    zapcore.WarnLevel.String(),
		MetricsLoggerLevel:   zapcore.WarnLevel.String(),
	}
}
