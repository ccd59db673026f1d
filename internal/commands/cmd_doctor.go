package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/doctor"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/pkg/iojson"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/pkg/utils"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on the data directory",
		UsageText:   "trialtool doctor [options]",
		Description: "Checks the data directory layout, analysis artifacts, and configuration.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	checks := []doctor.Check{
		doctor.NewDataDirCheck(cfg.DataDir, cfg.TrialsDir()),
		doctor.NewArtifactsCheck(cfg.TrialsDir()),
	}
	results := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}
	return cmd.outputText(results)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.WriteWith(c.Root().Writer, os.Stderr, out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(results []doctor.Result) error {
	// Buffer the report so it is not interleaved with log output from the
	// checks themselves.
	var w utils.DeferredWriter

	for _, r := range results {
		fmt.Fprintf(&w, "\n%s\n", r.Name)
		for _, item := range r.Items {
			marker := "ok"
			switch item.Status {
			case doctor.StatusWarn:
				marker = "warn"
			case doctor.StatusFail:
				marker = "FAIL"
			}
			if item.Detail != "" {
				fmt.Fprintf(&w, "  [%s] %s: %s\n", marker, item.Label, item.Detail)
			} else {
				fmt.Fprintf(&w, "  [%s] %s\n", marker, item.Label)
			}
		}
	}

	passed, warned, failed := doctor.Summary(results)
	fmt.Fprintf(&w, "\n%d passed, %d warnings, %d failed\n", passed, warned, failed)

	if err := w.Flush(os.Stderr); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	return nil
}
