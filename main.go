package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/commands"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/config"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/logging"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/data/fixtures"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "trialtool",
		Usage:     "Review tutoring trial recordings",
		UsageText: "trialtool [global options] command [command options]",
		Description: `Trialtool serves tutoring trial recordings for review: video playback with
timestamped annotations, AI-flagged issues, and dashboards over trial volume
and issue distributions.

Run 'trialtool serve' to start the review server.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TRIALTOOL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logs to stdout if unset)",
				Sources:     cli.EnvVars("TRIALTOOL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TRIALTOOL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TRIALTOOL_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			console := flags.LogFile == ""
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, console)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			flags.Trials = stores.NewTrialStore()
			flags.Annotations = stores.NewAnnotationStore(nil)

			if cfg.FixturesEnabled() {
				fixtures.Load(flags.Trials, flags.Annotations)
				log.Debug().Int("trials", len(flags.Trials.Trials())).Msg("fixtures loaded")
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	serveCmd := commands.NewServeCmd(flags)

	app = serveCmd.Register(app)
	app = commands.NewTrialsCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewLintCmd(flags).Register(app)

	// Serve is the default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'trialtool --help' for usage", c.Args().First())
		}
		return serveCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
