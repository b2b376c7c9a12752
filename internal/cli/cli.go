// Package cli implements the maxrects command-line interface.
//
// Commands:
//   - pack: pack boxes into bins and write the result
//   - generate: write a sample project with random boxes
//   - compare: run every heuristic on the same input and tabulate the outcome
//   - render: draw a saved project result as PNG, PDF, labels or DXF
//   - estimate: area-based lower bound on the bins a box list needs
//
// Settings come from flags, MAXRECTS_* environment variables and an optional
// maxrects.{toml,yaml,json} config file, in that order of precedence.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "maxrects"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	config     *viper.Viper
	configFile string
	verbose    bool
}

// New creates a CLI that logs to logw and prints command output to out.
func New(logw, out io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		config: viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "maxrects packs rectangles into bins",
		Long:         `maxrects places rectangular boxes into rectangular bins with the MaxRects free-space algorithm and renders the resulting layouts.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.readConfig()
		},
	}

	root.SetVersionTemplate("maxrects {{.Version}}\n" + "commit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: maxrects.{toml,yaml,json} in . or ~/.maxrects)")

	root.AddCommand(c.packCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.estimateCommand())

	return root
}
