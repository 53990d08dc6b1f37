package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
)

// serviceFactory builds the orchestrator for a loaded config. The returned
// func releases whatever the service holds open.
type serviceFactory func(cfg *config.Config) (pokedex.Service, func(), error)

// app carries state shared by every subcommand of one invocation
type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool

	cfg     *config.Config
	service pokedex.Service
	closeFn func()
}

// newRootCmd builds the command tree. The returned func releases the service
// built for the invocation and must be called after Execute, whether or not
// it failed.
func newRootCmd(factory serviceFactory) (*cobra.Command, func()) {
	a := &app{v: viper.New(), closeFn: func() {}}

	rootCmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Terminal pokedex backed by PokéAPI",
		Long:          `Browse the PokéAPI catalog: list every pokemon, show one pokemon's sprites and base stats.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./pokedex.yaml or $HOME/.pokedex/pokedex.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	flags.String("base-url", "", "PokéAPI base URL")
	flags.Duration("timeout", 0, "per-request timeout")
	flags.String("backend", "", "name catalog cache backend (memory|redis)")
	flags.String("redis-endpoint", "", "redis host:port for the redis backend")

	// only flags set on the command line override file and env values
	_ = a.v.BindPFlag("api.base_url", flags.Lookup("base-url"))
	_ = a.v.BindPFlag("api.timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("catalog.backend", flags.Lookup("backend"))
	_ = a.v.BindPFlag("redis.endpoint", flags.Lookup("redis-endpoint"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(a.v, a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg

		setupLogging(cfg.Log.Level, a.verbose)

		if !needsService(cmd) {
			return nil
		}

		service, closeFn, err := factory(cfg)
		if err != nil {
			return err
		}
		a.service = service
		a.closeFn = closeFn
		return nil
	}

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newCacheCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd, func() { a.closeFn() }
}

// annotationNoService marks commands that only need the loaded config
const annotationNoService = "pokedex/no-service"

func needsService(cmd *cobra.Command) bool {
	_, skip := cmd.Annotations[annotationNoService]
	return !skip
}

func setupLogging(level string, verbose bool) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
