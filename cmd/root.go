// Package cmd holds build information and the command line flags shared by
// smwallet executables.
package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spacemeshos/smwallet/config"
	"github.com/spacemeshos/smwallet/config/presets"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// AddFlags adds the configuration flags to flagSet. Flags write directly into
// conf and are applied after the config file. The returned pointer holds the
// config file path.
func AddFlags(flagSet *pflag.FlagSet, conf *config.Config) (configPath *string) {
	configPath = flagSet.StringP("config", "c", "", "load configuration from file")
	flagSet.StringVarP(&conf.Preset, "preset", "p", conf.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== BaseConfig Flags ========================== **/
	flagSet.StringVarP(&conf.DataDirParent, "data-folder", "d",
		conf.DataDirParent, "specify data directory for smwallet")
	flagSet.StringVar(&conf.FileLock, "filelock",
		conf.FileLock, "filesystem lock to prevent running more than one instance")
	flagSet.StringVar(&conf.NetworkName, "network",
		conf.NetworkName, "network to operate on (mainnet, testnet)")
	flagSet.BoolVar(&conf.CollectMetrics, "metrics",
		conf.CollectMetrics, "collect wallet metrics")
	flagSet.IntVar(&conf.MetricsPort, "metrics-port",
		conf.MetricsPort, "metric server port")
	flagSet.StringVar(&conf.MetricsPush, "metrics-push",
		conf.MetricsPush, "push metrics to url")
	flagSet.DurationVar(&conf.MetricsPushPeriod, "metrics-push-period",
		conf.MetricsPushPeriod, "push period")

	/** ======================== Timing Flags ========================== **/
	flagSet.DurationVar(&conf.Timing.LaunchDelay, "launch-delay",
		conf.Timing.LaunchDelay, "pause between launch and the readiness check")
	flagSet.DurationVar(&conf.Timing.RouteDelay, "route-delay",
		conf.Timing.RouteDelay, "pause before leaving the splash route")

	/** ======================== Keystore Flags ========================== **/
	flagSet.StringVar(&conf.Keystore.FileName, "keystore-file",
		conf.Keystore.FileName, "name of the credential file in the data directory")
	flagSet.IntVar(&conf.Keystore.KDF.N, "keystore-kdf-n",
		conf.Keystore.KDF.N, "scrypt cost of new credential files, a power of two")

	/** ======================== Sync Flags ========================== **/
	flagSet.StringVar(&conf.Sync.Endpoint, "endpoint",
		conf.Sync.Endpoint, "lightwalletd compatible server to synchronize from")
	flagSet.Uint32Var(&conf.Sync.Confirmations, "confirmations",
		conf.Sync.Confirmations, "confirmations before funds are verified")
	flagSet.Uint64Var((*uint64)(&conf.Sync.DefaultBirthday), "default-birthday",
		uint64(conf.Sync.DefaultBirthday), "birthday of restored wallets without one; 0 uses the network default")
	flagSet.DurationVar(&conf.Engine.Interval, "sync-interval",
		conf.Engine.Interval, "interval between two synchronization steps")
	flagSet.BoolVar(&conf.Engine.MeterQueries, "meter-queries",
		conf.Engine.MeterQueries, "record the duration of engine database queries")

	/** ======================== Projector Flags ========================== **/
	flagSet.IntVar(&conf.Projector.VisibleRows, "visible-rows",
		conf.Projector.VisibleRows, "events shown by a collapsed history")
	flagSet.DurationVar(&conf.Projector.RefreshTimeout, "refresh-timeout",
		conf.Projector.RefreshTimeout, "timeout of a history or balance refresh")

	/** ======================== Logging Flags ========================== **/
	flagSet.StringVar(&conf.LOGGING.Encoder, "log-encoder",
		conf.LOGGING.Encoder, "log as json instead of plain text")
	flagSet.StringVar(&conf.LOGGING.AppLoggerLevel, "log-level",
		conf.LOGGING.AppLoggerLevel, "level of the application logger")
	return configPath
}
