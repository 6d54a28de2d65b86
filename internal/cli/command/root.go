package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sshblend/sshblend/internal/infra/buildinfo"
)

// Metadata keys for injected collaborators. Production runs leave
// them unset and get the system probe and the atomic file writer;
// tests install fakes.
const (
	metaProbe = "probe"
	metaSink  = "sink"
)

// App creates the CLI application. Running it without a subcommand
// performs one generation run.
func App() *cli.App {
	// -V prints the version so -v can stay the verbose shorthand.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Print the version",
	}

	return &cli.App{
		Name:    "sshblend",
		Usage:   "Compose an SSH client config from network-aware fragments",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Action:  runGenerate,
		Commands: []*cli.Command{
			CheckCommand(),
			WatchCommand(),
			ConfigCommand(),
		},
		Metadata: map[string]any{},
	}
}

// globalFlags returns the flags shared by every command.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the sshblend configuration file",
			EnvVars: []string{"SSHBLEND_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "fragments-dir",
			Aliases: []string{"d"},
			Usage:   "Directory containing fragment files",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "SSH client config file to write",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Report format: table, json",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide report output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable diagnostic logging",
		},
	}
}

// GlobalFlags carries the parsed global flag values.
type GlobalFlags struct {
	ConfigFile   string
	FragmentsDir string
	Output       string

	Format string
	Wide   bool

	Verbose bool
}

// ParseGlobalFlags extracts global flags from the context, including
// flags set on a parent command.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		ConfigFile:   c.String("config"),
		FragmentsDir: c.String("fragments-dir"),
		Output:       c.String("output"),
		Format:       c.String("format"),
		Wide:         c.Bool("wide"),
		Verbose:      c.Bool("verbose"),
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
