package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sshblend/sshblend/internal/cli/output"
)

// CheckCommand returns the check subcommand: evaluate conditions and
// print the per-fragment plan without touching the output file.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Evaluate fragments and print the plan without writing",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Also print the composed config",
			},
		},
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	rt, err := buildRuntime(c)
	if err != nil {
		return err
	}

	report, doc, err := rt.generator().Plan(c.Context)
	if err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Format) {
	case output.FormatJSON:
		if err := output.NewFormatter(output.FormatJSON, flags.Wide).Format(c.App.Writer, report); err != nil {
			return err
		}
	default:
		table := output.ReportTable(report, flags.Wide)
		if err := table.Render(c.App.Writer); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, output.ReportSummary(report))
	}

	if c.Bool("show") {
		fmt.Fprintln(c.App.Writer)
		if _, err := c.App.Writer.Write(doc); err != nil {
			return err
		}
	}
	return nil
}
