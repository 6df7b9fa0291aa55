package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vmunix/kodisrc/internal/config"
	"github.com/vmunix/kodisrc/internal/kodi"
)

var version = "dev"

// skipConfig marks commands that must run even when the config file is broken.
const skipConfig = "skip-config"

var rootFlags struct {
	ConfigFile string
	KodiDir    string
	LogLevel   string
}

// Set by the root PersistentPreRunE.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kodisrc",
	Short: "Register network media sources with Kodi",
	Long: `kodisrc - register network media sources with Kodi

Adds a source to Kodi's video database (MyVideos116.db), sources.xml
and mediasources.xml in one step, and clears them again.`,
	Example: `  kodisrc add Serien http://127.0.0.1:13531/ tvshows
  kodisrc add_from_config /etc/pcloud/source.ini
  kodisrc --kodi-dir /storage/.kodi list --check`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.ConfigFile, "config", "c", "", "Path to config file (default: search $KODISRC_CONFIG, ./kodisrc.toml, ~/.config/kodisrc, /etc/kodisrc)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.KodiDir, "kodi-dir", "", "Kodi data directory containing userdata/ (overrides config, default ~/.kodi)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - overrides config file setting")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("kodisrc {{.Version}}\n")
}

func setup(cmd *cobra.Command, _ []string) error {
	var (
		c    *config.Config
		path string
	)
	if cmd.Annotations[skipConfig] == "" {
		var err error
		c, path, err = config.LoadOrDefault(rootFlags.ConfigFile)
		if err != nil {
			return err
		}
		if rootFlags.KodiDir != "" {
			c.Kodi.Dir = rootFlags.KodiDir
		}
	}

	level := rootFlags.LogLevel
	if level == "" && c != nil {
		level = c.Log.Level
	}
	if level == "" {
		level = "info"
	}

	l, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(logger)

	if c != nil {
		cfg = c
		logger.Debug("configuration loaded", "file", path, "kodi_dir", cfg.Kodi.Dir)
	}
	return nil
}

// newLogger returns a slog.Logger that renders through charmbracelet/log.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "kodisrc",
	})
	return slog.New(handler), nil
}

// newCoordinator checks the Kodi directory only now, after --kodi-dir has
// replaced whatever the config file named.
func newCoordinator() (*kodi.Coordinator, error) {
	if err := cfg.CheckKodiDir(); err != nil {
		return nil, err
	}
	return kodi.New(cfg.Kodi.Dir, logger), nil
}
