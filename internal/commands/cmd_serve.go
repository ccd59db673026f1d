package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/profiler"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/server"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/pkg/randid"
)

type ServeCmd struct {
	flags *Flags

	// flags
	addr      string
	pprofAddr string
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Run the review server",
		UsageText: "trialtool serve [--addr host:port]",
		Description: `Starts the HTTP server: trial video streaming with byte-range support,
annotation CRUD, playback session control, and dashboard aggregates.

The server holds annotations in memory; they do not survive a restart.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (overrides config)",
				Sources:     cli.EnvVars("TRIALTOOL_ADDR"),
				Destination: &cmd.addr,
			},
			&cli.StringFlag{
				Name:        "pprof",
				Usage:       "also serve pprof endpoints on this address (e.g. :6060)",
				Sources:     cli.EnvVars("TRIALTOOL_PPROF"),
				Destination: &cmd.pprofAddr,
			},
		},
		Action: cmd.run,
	})

	return app
}

// Run executes the serve action directly; used when serve is the default
// command.
func (cmd *ServeCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if cmd.addr != "" {
		cfg.Server.Addr = cmd.addr
	}

	log.Info().Str("run_id", randid.Generate(8)).Str("data_dir", cfg.DataDir).Msg("serve starting")
	for _, w := range cfg.Warnings() {
		log.Warn().Str("category", w.Category).Str("item", w.Item).Msg(w.Message)
	}

	srv := server.New(cfg, cmd.flags.Trials, cmd.flags.Annotations, nil)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	fmt.Fprintf(os.Stderr, "listening on %s\n", srv.Addr())

	if cmd.pprofAddr != "" {
		pprofSrv := profiler.New(cmd.pprofAddr)
		if err := pprofSrv.Start(ctx); err != nil {
			return fmt.Errorf("start pprof server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			_ = pprofSrv.Shutdown(shutdownCtx)
		}()
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
