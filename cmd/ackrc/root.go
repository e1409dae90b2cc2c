package ackrc

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFormat     string
	flagNoColor    bool
	flagLogLevel   string
	flagDebug      bool
	flagNoEnv      bool
	flagAckrc      []string
	flagName       string
	flagEnvVar     string
	flagSystemPath string
	flagDir        string
	flagExclude    []string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the ackrc CLI.
var rootCmd = &cobra.Command{
	Use:   "ackrc",
	Short: "Find ack rc files and show them in precedence order",
	Long: `ackrc locates ack-style rc files the way ack does: the system file,
then the file named by $ACKRC or ~/.ackrc, then the nearest .ackrc/_ackrc above
the working directory. Duplicates are removed and the survivors are listed or
dumped in the order their options are applied.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the ackrc CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFormat, "format", "", "output format: text|table|json|yaml (default text)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
	pf.BoolVar(&flagDebug, "debug", false, "shorthand for --log-level=debug")
	pf.BoolVar(&flagNoEnv, "noenv", false, "ignore system, user and project rc files")
	pf.StringArrayVar(&flagAckrc, "ackrc", nil, "also use this rc file, after all others (repeatable)")
	pf.StringVar(&flagName, "name", "", "rc base name (default ackrc)")
	pf.StringVar(&flagEnvVar, "env-var", "", "override variable naming a user rc file (default ACKRC)")
	pf.StringVar(&flagSystemPath, "system-path", "", "system-wide rc file (default /etc/<name>; ignored on Windows)")
	pf.StringVarP(&flagDir, "dir", "C", "", "start the project search in this directory instead of the working directory")
	pf.StringArrayVar(&flagExclude, "exclude", nil, "hide rc files whose path matches this glob (repeatable)")
}
