package ackrc

import (
	"github.com/spf13/cobra"

	"github.com/varalys/ackrc/internal/rcfile"
	"github.com/varalys/ackrc/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every rc file with the option lines it contributes",
		Long: `dump reads each discovered rc file in precedence order and prints its
path followed by the options it contributes. Blank lines and # comments are
dropped; everything else is shown exactly as the option parser will see it.`,
		Args: cobra.NoArgs,
		RunE: runDump,
	}
	rootCmd.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	refs, err := discover(s.log, s.settings)
	if err != nil {
		return err
	}
	sections := make([]report.Section, 0, len(refs))
	for _, ref := range refs {
		lines, err := rcfile.ReadAll(ref.Path)
		if err != nil {
			return err
		}
		sections = append(sections, report.Section{
			Path:    ref.Path,
			Scope:   ref.Scope,
			Project: ref.Project,
			Lines:   lines,
		})
	}
	return report.PrintDump(cmd.OutOrStdout(), sections, s.print)
}
