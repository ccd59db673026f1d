package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/logging"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/server"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/pkg/iojson"
)

type TrialsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewTrialsCmd creates a new trials command
func NewTrialsCmd(flags *Flags) *TrialsCmd {
	return &TrialsCmd{flags: flags}
}

// Register adds the trials command to the application
func (cmd *TrialsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "trials",
		Usage:       "List trials found in the data directory",
		UsageText:   "trialtool trials [--json]",
		Description: `Scans the trials directory for analysis artifacts and prints one row per trial.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TrialsCmd) run(ctx context.Context, c *cli.Command) error {
	provider := server.NewProvider(cmd.flags.Config.TrialsDir(), logging.Component("provider"))

	trials, err := provider.List()
	if err != nil {
		return fmt.Errorf("list trials: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, os.Stderr, trials)
	}

	if len(trials) == 0 {
		fmt.Fprintf(os.Stderr, "No trials found in %s\n", cmd.flags.Config.TrialsDir())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRIAL\tANALYSIS\tSTATUS\tISSUES\tVIDEO")
	for _, t := range trials {
		video := "yes"
		if !t.HasVideo {
			video = "missing"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.TrialID, t.AnalysisID, t.Status, t.IssueCount, video)
	}
	return w.Flush()
}
