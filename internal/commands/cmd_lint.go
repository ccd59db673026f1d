package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/validate"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/pkg/iojson"
)

// LintCmd validates an exported annotations JSON file, catching broken
// exports before they are shared or re-imported.
type LintCmd struct {
	flags  *Flags
	reader iojson.FileReader[[]trial.Annotation]
}

func NewLintCmd(flags *Flags) *LintCmd {
	return &LintCmd{flags: flags}
}

func (cmd *LintCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "lint",
		Usage:       "Validate an exported annotations file",
		UsageText:   "trialtool lint -f annotations.json",
		Description: `Reads an annotations JSON array from a file or stdin and reports entries
with empty content, invalid time spans, or unknown part/emotion values.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *LintCmd) run(ctx context.Context, c *cli.Command) error {
	anns, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	var problems []string
	for i, a := range anns {
		label := a.AnnotationID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if err := validate.Annotation(a); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %s", label, err))
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		return fmt.Errorf("%d problems in %d annotations", len(problems), len(anns))
	}

	fmt.Fprintf(os.Stderr, "%d annotations OK\n", len(anns))
	return nil
}
