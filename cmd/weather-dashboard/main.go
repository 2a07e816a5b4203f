package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"weather-dashboard/config"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Multi-city weather dashboard backed by Weatherstack: current conditions, forecasts, unit switching and historical lookups.

// @contact.name Weather Dashboard Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Sessions
// @tag.description Dashboard sessions
// @tag.name Cities
// @tag.description City registry and selection
// @tag.name Units
// @tag.description Temperature unit
// @tag.name Historical
// @tag.description Historical weather lookups

var (
	configPath string
	envPath    string

	cnf    *config.Config
	l      *logger.Logger
	sentry *observe.SentryHook
)

var rootCmd = &cobra.Command{
	Use:   "weather-dashboard",
	Short: "Weather dashboard backed by Weatherstack",
	Long: `weather-dashboard serves a multi-city weather dashboard over HTTP and
offers one-shot lookups of current, forecast and historical weather.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", config.DefaultEnvPath, "path to a .env file")
}

// bootstrap loads the configuration and builds the logger. Logs go to logOut
// and, when a DSN is configured, to Sentry.
func bootstrap(logOut io.Writer) error {
	var err error
	cnf, err = config.NewConfigWithProvider(config.NewFileConfigProvider(configPath).WithEnvFile(envPath))
	if err != nil {
		return err
	}

	writers := []io.Writer{logOut}
	if cnf.Sentry.DSN != "" {
		sentry, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)
		if err != nil {
			return err
		}
		writers = append(writers, sentry)
	}

	l = logger.NewZapLogger(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Writers: writers,
	})
	return nil
}

func shutdown() {
	if sentry != nil {
		sentry.Flush()
	}
	if l != nil {
		_ = l.Stop()
	}
}

func main() {
	defer shutdown()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		shutdown()
		os.Exit(1)
	}
}
