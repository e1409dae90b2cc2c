package ackrc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/varalys/ackrc/internal/config"
	"github.com/varalys/ackrc/internal/discovery"
	"github.com/varalys/ackrc/internal/platform"
)

var (
	cfgOutput string
	cfgRC     bool
	cfgFormat string
	cfgNoCol  bool
)

const starterRC = `# ackrc: one option per line, exactly as on the command line.
# Blank lines and lines starting with # are ignored.
#
# --sort-files
# --smart-case
# --ignore-dir=vendor
# --pager=less -R
`

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file, or a starter .ackrc with --rc",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", "", "output path (default: settings file location, or ./.ackrc with --rc)")
	initCmd.Flags().BoolVar(&cfgRC, "rc", false, "write a commented starter rc file instead of settings")
	initCmd.Flags().StringVar(&cfgFormat, "default-format", "text", "default output format stored in settings")
	initCmd.Flags().BoolVar(&cfgNoCol, "default-no-color", false, "store no_color: true in settings")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the settings file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := config.GlobalPath()
			if p == "" {
				return fmt.Errorf("no config directory: set XDG_CONFIG_HOME or HOME")
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cfgCmd.AddCommand(pathCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if cfgRC {
		return writeStarterRC(cmd)
	}
	out := cfgOutput
	if out == "" {
		out = config.GlobalPath()
		if out == "" {
			return fmt.Errorf("no config directory: set XDG_CONFIG_HOME or HOME, or pass --output")
		}
	}
	name := flagName
	if name == "" {
		name = platform.DefaultName
	}
	envVar := flagEnvVar
	if envVar == "" {
		envVar = discovery.DefaultEnvVar
	}
	fc := config.FileConfig{
		Name:    &name,
		EnvVar:  &envVar,
		Format:  optStrPtr(cfgFormat),
		NoColor: boolPtr(cfgNoCol),
	}
	if flagSystemPath != "" {
		fc.SystemPath = &flagSystemPath
	}
	if err := config.Save(out, fc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
	return nil
}

// writeStarterRC creates a commented rc file, refusing to clobber a file or
// to create the second of the two alternate names in a directory.
func writeStarterRC(cmd *cobra.Command) error {
	name := flagName
	if name == "" {
		name = platform.DefaultName
	}
	alt := discovery.AltNames(name)
	out := cfgOutput
	if out == "" {
		dir := flagDir
		if dir == "" {
			dir = "."
		}
		out = filepath.Join(dir, alt[0])
	}
	dir := filepath.Dir(out)
	if _, err := os.Stat(out); err == nil {
		return fmt.Errorf("%s already exists", out)
	}
	base := filepath.Base(out)
	for i, n := range alt {
		if base == n {
			other := filepath.Join(dir, alt[1-i])
			if _, err := os.Stat(other); err == nil {
				return fmt.Errorf("%s already has %s; writing %s would leave both alternate rc files", dir, alt[1-i], base)
			}
		}
	}
	if err := os.WriteFile(out, []byte(starterRC), 0o644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
	return nil
}

func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(v bool) *bool {
	if !v {
		return nil
	}
	return &v
}
