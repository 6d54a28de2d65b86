package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sshblend/sshblend/internal/cli/output"
	"github.com/sshblend/sshblend/internal/core/domain"
)

// runGenerate is the default action: one generation run writing the
// composed config. Skipped fragments do not fail the run; only a
// fatal error (unlistable fragment directory, failed write) produces
// a non-zero exit.
func runGenerate(c *cli.Context) error {
	if c.Args().Present() {
		return domain.ErrInvalidArgument.WithDetails("unknown command: " + c.Args().First())
	}

	rt, err := buildRuntime(c)
	if err != nil {
		return err
	}

	report, err := rt.generator().Run(c.Context)
	if err != nil {
		return err
	}

	// Quiet on success so startup scripts stay silent; the summary is
	// available under --verbose.
	if ParseGlobalFlags(c).Verbose {
		fmt.Fprintf(c.App.Writer, "%s -> %s\n", output.ReportSummary(report), report.OutputPath)
	}
	return nil
}
